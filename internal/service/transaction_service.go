package service

import (
	"context"

	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/upstream"
	"go.uber.org/zap"
)

// TransactionService merges two upstream collections into one activity feed.
// The transactions endpoint is the primary source; aid requests are the
// fallback when the primary is unavailable or empty.
type TransactionService struct {
	client *upstream.Client
	logger *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(client *upstream.Client, logger *zap.Logger) *TransactionService {
	return &TransactionService{client: client, logger: logger}
}

// List returns the activity feed. The primary tier wins only when it yields at
// least one record; an upstream failure or an empty result moves on to the
// requests tier. Both tiers failing surfaces the fallback error.
func (s *TransactionService) List(ctx context.Context) ([]domain.TransactionView, error) {
	views, err := s.listTransactions(ctx)
	if err == nil && len(views) > 0 {
		return views, nil
	}
	if err != nil {
		s.logger.Warn("Transactions source unavailable, falling back to requests", zap.Error(err))
	}

	return s.listRequests(ctx)
}

func (s *TransactionService) listTransactions(ctx context.Context) ([]domain.TransactionView, error) {
	raw, err := s.client.Get(ctx, "/Transactions/all-transactions")
	if err != nil {
		return nil, err
	}

	records := normalize.UnwrapRecords(raw, normalize.TransactionListKeys...)
	views := make([]domain.TransactionView, 0, len(records))
	for _, rec := range records {
		views = append(views, normalize.ProjectTransaction(rec))
	}

	s.enrichPartnerNames(ctx, views)
	return views, nil
}

func (s *TransactionService) listRequests(ctx context.Context) ([]domain.TransactionView, error) {
	raw, err := s.client.Get(ctx, "/requests")
	if err != nil {
		return nil, err
	}

	records := normalize.UnwrapRecords(raw, normalize.RequestListKeys...)
	views := make([]domain.TransactionView, 0, len(records))
	for _, rec := range records {
		views = append(views, normalize.ProjectRequest(rec))
	}

	s.logger.Debug("Listed requests as activity", zap.Int("count", len(views)))
	return views, nil
}

// enrichPartnerNames joins transaction partner ids against the partner
// directory. Enrichment is best-effort: a directory failure leaves the
// existing names in place.
func (s *TransactionService) enrichPartnerNames(ctx context.Context, views []domain.TransactionView) {
	needed := false
	for i := range views {
		if views[i].PartnerID != "" {
			needed = true
			break
		}
	}
	if !needed {
		return
	}

	raw, err := s.client.Get(ctx, "/partners")
	if err != nil {
		s.logger.Warn("Partner directory unavailable, skipping name enrichment", zap.Error(err))
		return
	}

	directory := normalize.PartnerDirectory(normalize.UnwrapRecords(raw, normalize.PartnerListKeys...))
	for i := range views {
		if views[i].PartnerID == "" {
			continue
		}
		if name, ok := directory[normalize.NormalizeID(views[i].PartnerID)]; ok {
			views[i].PartnerName = name
		}
	}
}

// activitySource describes one tier of the lookup chain.
type activitySource struct {
	path     string
	listKeys []string
	idKeys   []string
	project  func(normalize.Record) domain.TransactionView
}

// GetByID resolves an activity record by scanning the transaction tier first
// and the requests tier second. The first exact id match wins; a tier that
// fails to fetch is skipped rather than aborting the lookup.
func (s *TransactionService) GetByID(ctx context.Context, id string) (*domain.TransactionView, error) {
	sources := []activitySource{
		{
			path:     "/Transactions/all-transactions",
			listKeys: normalize.TransactionListKeys,
			idKeys:   normalize.TransactionIDKeys,
			project:  normalize.ProjectTransaction,
		},
		{
			path:     "/requests",
			listKeys: normalize.RequestListKeys,
			idKeys:   normalize.RequestIDKeys,
			project:  normalize.ProjectRequest,
		},
	}

	for _, src := range sources {
		raw, err := s.client.Get(ctx, src.path)
		if err != nil {
			s.logger.Warn("Activity source unavailable during lookup",
				zap.String("path", src.path), zap.Error(err))
			continue
		}

		for _, rec := range normalize.UnwrapRecords(raw, src.listKeys...) {
			if candidate, ok := normalize.StringField(rec, src.idKeys...); ok && candidate == id {
				view := src.project(rec)
				return &view, nil
			}
		}
	}
	return nil, ErrNotFound
}
