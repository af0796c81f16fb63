package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/service"
	"go.uber.org/zap"
)

// CharityHandler handles HTTP requests for charities
type CharityHandler struct {
	charityService *service.CharityService
	logger         *zap.Logger
}

// NewCharityHandler creates a new CharityHandler
func NewCharityHandler(charityService *service.CharityService, logger *zap.Logger) *CharityHandler {
	return &CharityHandler{
		charityService: charityService,
		logger:         logger,
	}
}

// ListCharities returns registered charities, optionally narrowed by a free
// text query (q) and a canonical status.
func (h *CharityHandler) ListCharities(w http.ResponseWriter, r *http.Request) {
	charities, err := h.charityService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list charities", zap.Error(err))
		respondServiceError(w, err, "Failed to list charities")
		return
	}

	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	respondJSON(w, http.StatusOK, normalize.FilterCharities(charities, query, status))
}

// GetCharity returns a single charity by id.
func (h *CharityHandler) GetCharity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	charity, err := h.charityService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Charity not found.")
		return
	}
	respondJSON(w, http.StatusOK, charity)
}
