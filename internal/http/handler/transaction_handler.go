package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/service"
	"go.uber.org/zap"
)

// TransactionHandler handles HTTP requests for the activity feed
type TransactionHandler struct {
	transactionService *service.TransactionService
	logger             *zap.Logger
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// ListTransactions returns the merged activity feed, optionally narrowed by a
// free text query (q), a canonical status, and an activity type substring.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list transactions", zap.Error(err))
		respondServiceError(w, err, "Failed to list transactions")
		return
	}

	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	txType := r.URL.Query().Get("type")
	respondJSON(w, http.StatusOK, normalize.FilterTransactions(transactions, query, status, txType))
}

// GetTransaction resolves a single activity record by id, checking the
// transaction source before the requests source.
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	transaction, err := h.transactionService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Transaction not found.")
		return
	}
	respondJSON(w, http.StatusOK, transaction)
}
