package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"trademate/internal/service"
	"trademate/internal/transport/rest/middleware"
)

// IntegrationHandler handles integration endpoints
type IntegrationHandler struct {
	integrationSvc *service.IntegrationService
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(integrationSvc *service.IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{integrationSvc: integrationSvc}
}

// List handles GET /v1/integrations
func (h *IntegrationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	integrations, err := h.integrationSvc.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"integrations": integrations})
}

// ConnectRequest is the request body for connecting a provider
type ConnectRequest struct {
	Provider string `json:"provider"`
}

// Connect handles POST /v1/integrations
func (h *IntegrationHandler) Connect(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	integration, err := h.integrationSvc.Connect(r.Context(), userID, req.Provider)
	if err == service.ErrUnknownProvider {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, integration)
}

// Disconnect handles DELETE /v1/integrations/{provider}
func (h *IntegrationHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	provider := mux.Vars(r)["provider"]

	if err := h.integrationSvc.Disconnect(r.Context(), userID, provider); err != nil {
		if err == service.ErrUnknownProvider {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "disconnected"})
}
