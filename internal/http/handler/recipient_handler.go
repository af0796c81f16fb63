package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/service"
	"go.uber.org/zap"
)

// RecipientHandler handles HTTP requests for aid recipients
type RecipientHandler struct {
	recipientService *service.RecipientService
	logger           *zap.Logger
}

// NewRecipientHandler creates a new RecipientHandler
func NewRecipientHandler(recipientService *service.RecipientService, logger *zap.Logger) *RecipientHandler {
	return &RecipientHandler{
		recipientService: recipientService,
		logger:           logger,
	}
}

// ListRecipients returns aid recipients, optionally narrowed by a free text
// query (q) and a canonical case status.
func (h *RecipientHandler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.recipientService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list recipients", zap.Error(err))
		respondServiceError(w, err, "Failed to list recipients")
		return
	}

	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	respondJSON(w, http.StatusOK, normalize.FilterRecipients(recipients, query, status))
}

// GetRecipient returns a single recipient by id.
func (h *RecipientHandler) GetRecipient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recipient, err := h.recipientService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Recipient not found.")
		return
	}
	respondJSON(w, http.StatusOK, recipient)
}
