package service

import (
	"context"

	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/upstream"
	"go.uber.org/zap"
)

// CharityService fetches and normalizes charities.
type CharityService struct {
	client *upstream.Client
	logger *zap.Logger
}

// NewCharityService creates a new CharityService
func NewCharityService(client *upstream.Client, logger *zap.Logger) *CharityService {
	return &CharityService{client: client, logger: logger}
}

// List returns all charities as view models, in backend order.
func (s *CharityService) List(ctx context.Context) ([]domain.CharityView, error) {
	raw, err := s.client.Get(ctx, "/charities")
	if err != nil {
		return nil, err
	}

	records := normalize.UnwrapRecords(raw, normalize.CharityListKeys...)
	views := make([]domain.CharityView, 0, len(records))
	for _, rec := range records {
		views = append(views, normalize.ProjectCharity(rec))
	}

	s.logger.Debug("Listed charities", zap.Int("count", len(views)))
	return views, nil
}

// GetByID scans the fetched charity collection for an exact id match.
func (s *CharityService) GetByID(ctx context.Context, id string) (*domain.CharityView, error) {
	raw, err := s.client.Get(ctx, "/charities")
	if err != nil {
		return nil, err
	}

	for _, rec := range normalize.UnwrapRecords(raw, normalize.CharityListKeys...) {
		if candidate, ok := normalize.StringField(rec, normalize.CharityIDKeys...); ok && candidate == id {
			view := normalize.ProjectCharity(rec)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}
