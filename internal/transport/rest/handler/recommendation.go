package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"trademate/internal/model"
	"trademate/internal/service"
	"trademate/internal/transport/rest/middleware"
)

// RecommendationHandler handles recommendation feed endpoints
type RecommendationHandler struct {
	recSvc      *service.RecommendationService
	behaviorSvc *service.BehaviorService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recSvc *service.RecommendationService, behaviorSvc *service.BehaviorService) *RecommendationHandler {
	return &RecommendationHandler{
		recSvc:      recSvc,
		behaviorSvc: behaviorSvc,
	}
}

// Refresh handles POST /v1/recommendations/refresh
func (h *RecommendationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	recs, err := h.recSvc.Refresh(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
}

// List handles GET /v1/recommendations?stream=forYou
func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stream := model.Stream(r.URL.Query().Get("stream"))
	recs, err := h.recSvc.GetFeed(r.Context(), userID, stream)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Decorate with display metadata so the client never indexes an
	// unknown category
	type decorated struct {
		*model.Recommendation
		Style model.CategoryStyle `json:"style"`
	}
	out := make([]decorated, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decorated{Recommendation: rec, Style: model.StyleForType(rec.Type)})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": out})
}

// InteractRequest is the request body for recording an interaction
type InteractRequest struct {
	Event string `json:"event"`
}

// Interact handles POST /v1/recommendations/{id}/interact
func (h *RecommendationHandler) Interact(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	recID := mux.Vars(r)["id"]

	var req InteractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.behaviorSvc.RecordInteraction(r.Context(), userID, recID, req.Event); err != nil {
		if err == service.ErrUnknownEvent {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}
