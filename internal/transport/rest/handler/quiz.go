package handler

import (
	"encoding/json"
	"net/http"

	"trademate/internal/model"
	"trademate/internal/service"
	"trademate/internal/transport/rest/middleware"
)

// QuizHandler handles chaos quiz endpoints
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// Score handles POST /v1/quiz/score. Anonymous pre-signup scoring,
// nothing persisted.
func (h *QuizHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req model.ChaosQuizResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.quizSvc.ScoreOnly(req))
}

// Submit handles POST /v1/quiz/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.ChaosQuizResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.quizSvc.Submit(r.Context(), userID, req))
}

// Result handles GET /v1/quiz/result
func (h *QuizHandler) Result(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.quizSvc.GetResult(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "quiz not completed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
