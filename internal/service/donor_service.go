package service

import (
	"context"

	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/upstream"
	"go.uber.org/zap"
)

// DonorService fetches and normalizes donor accounts.
type DonorService struct {
	client *upstream.Client
	logger *zap.Logger
}

// NewDonorService creates a new DonorService
func NewDonorService(client *upstream.Client, logger *zap.Logger) *DonorService {
	return &DonorService{client: client, logger: logger}
}

// List returns all donors as view models, in backend order.
func (s *DonorService) List(ctx context.Context) ([]domain.DonorView, error) {
	raw, err := s.client.Get(ctx, "/donors")
	if err != nil {
		return nil, err
	}

	records := normalize.UnwrapRecords(raw, normalize.DonorListKeys...)
	views := make([]domain.DonorView, 0, len(records))
	for _, rec := range records {
		views = append(views, normalize.ProjectDonor(rec))
	}

	s.logger.Debug("Listed donors", zap.Int("count", len(views)))
	return views, nil
}

// GetByID scans the fetched donor collection for an exact id match.
func (s *DonorService) GetByID(ctx context.Context, id string) (*domain.DonorView, error) {
	raw, err := s.client.Get(ctx, "/donors")
	if err != nil {
		return nil, err
	}

	for _, rec := range normalize.UnwrapRecords(raw, normalize.DonorListKeys...) {
		if candidate, ok := normalize.StringField(rec, normalize.DonorIDKeys...); ok && candidate == id {
			view := normalize.ProjectDonor(rec)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}
