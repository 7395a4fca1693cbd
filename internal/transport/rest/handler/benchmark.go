package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"trademate/internal/model"
	"trademate/internal/repository"
)

// BenchmarkHandler handles host-only benchmark administration
type BenchmarkHandler struct {
	benchmarkRepo repository.BenchmarkRepo
}

// NewBenchmarkHandler creates a new benchmark handler
func NewBenchmarkHandler(benchmarkRepo repository.BenchmarkRepo) *BenchmarkHandler {
	return &BenchmarkHandler{benchmarkRepo: benchmarkRepo}
}

// Upsert handles PUT /v1/benchmarks
func (h *BenchmarkHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var benchmarks model.IndustryBenchmarks
	if err := json.NewDecoder(r.Body).Decode(&benchmarks); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if benchmarks.Industry == "" {
		writeError(w, http.StatusBadRequest, "industry is required")
		return
	}

	if err := h.benchmarkRepo.Upsert(r.Context(), &benchmarks); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, benchmarks)
}

// Get handles GET /v1/benchmarks/{industry}
func (h *BenchmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	industry := mux.Vars(r)["industry"]
	benchmarks, err := h.benchmarkRepo.GetByIndustry(r.Context(), industry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if benchmarks == nil {
		writeError(w, http.StatusNotFound, "no benchmarks for industry")
		return
	}

	writeJSON(w, http.StatusOK, benchmarks)
}
