package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/service"
	"go.uber.org/zap"
)

// DonorHandler handles HTTP requests for donors
type DonorHandler struct {
	donorService *service.DonorService
	logger       *zap.Logger
}

// NewDonorHandler creates a new DonorHandler
func NewDonorHandler(donorService *service.DonorService, logger *zap.Logger) *DonorHandler {
	return &DonorHandler{
		donorService: donorService,
		logger:       logger,
	}
}

// ListDonors returns donor accounts, optionally narrowed by a free text
// query (q) and a canonical status.
func (h *DonorHandler) ListDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := h.donorService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list donors", zap.Error(err))
		respondServiceError(w, err, "Failed to list donors")
		return
	}

	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	respondJSON(w, http.StatusOK, normalize.FilterDonors(donors, query, status))
}

// GetDonor returns a single donor by id.
func (h *DonorHandler) GetDonor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	donor, err := h.donorService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Donor not found.")
		return
	}
	respondJSON(w, http.StatusOK, donor)
}
