package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/service"
	"go.uber.org/zap"
)

// PartnerHandler handles HTTP requests for partners
type PartnerHandler struct {
	partnerService *service.PartnerService
	logger         *zap.Logger
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *service.PartnerService, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
		logger:         logger,
	}
}

// ListPartners returns the partner directory, optionally narrowed by a free
// text query (q) and a canonical status.
func (h *PartnerHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partnerService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list partners", zap.Error(err))
		respondServiceError(w, err, "Failed to list partners")
		return
	}

	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	respondJSON(w, http.StatusOK, normalize.FilterPartners(partners, query, status))
}

// GetPartner returns a single partner by id.
func (h *PartnerHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	partner, err := h.partnerService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Partner not found.")
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

// RedeemPoints forwards a card redemption to the partner network.
func (h *PartnerHandler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	var req domain.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.partnerService.RedeemPoints(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to redeem points", zap.Error(err))
		respondServiceError(w, err, "Failed to redeem points")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
