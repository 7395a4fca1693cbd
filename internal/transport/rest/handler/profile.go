package handler

import (
	"net/http"

	"trademate/internal/service"
	"trademate/internal/transport/rest/middleware"
)

// ProfileHandler handles unified profile and dashboard endpoints
type ProfileHandler struct {
	synthesizer *service.SynthesizerService
	behaviorSvc *service.BehaviorService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(synthesizer *service.SynthesizerService, behaviorSvc *service.BehaviorService) *ProfileHandler {
	return &ProfileHandler{
		synthesizer: synthesizer,
		behaviorSvc: behaviorSvc,
	}
}

// Unified handles GET /v1/profile/unified
func (h *ProfileHandler) Unified(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.synthesizer.Synthesize(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Dashboard handles GET /v1/profile/dashboard, the health/data-quality
// view the feed page renders alongside the recommendations
func (h *ProfileHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.synthesizer.Synthesize(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"healthScore": profile.HealthScore(),
		"dataQuality": profile.DataQuality(),
		"chaosScore":  profile.QuizInsights.ChaosScore,
		"clarityZone": profile.QuizInsights.ClarityZone,
		"sources": map[string]interface{}{
			"financial": profile.FinancialData.Source,
			"customer":  profile.CustomerData.Source,
			"schedule":  profile.ScheduleData.Source,
		},
	})
}

// Behavior handles GET /v1/profile/behavior
func (h *ProfileHandler) Behavior(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	behavior, err := h.behaviorSvc.Summarize(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, behavior)
}
