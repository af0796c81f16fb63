package service

import (
	"context"

	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/upstream"
	"go.uber.org/zap"
)

// RecipientService fetches and normalizes aid recipients and their cases.
type RecipientService struct {
	client *upstream.Client
	logger *zap.Logger
}

// NewRecipientService creates a new RecipientService
func NewRecipientService(client *upstream.Client, logger *zap.Logger) *RecipientService {
	return &RecipientService{client: client, logger: logger}
}

// List returns all recipients as view models, in backend order.
func (s *RecipientService) List(ctx context.Context) ([]domain.RecipientView, error) {
	raw, err := s.client.Get(ctx, "/recipients")
	if err != nil {
		return nil, err
	}

	records := normalize.UnwrapRecords(raw, normalize.RecipientListKeys...)
	views := make([]domain.RecipientView, 0, len(records))
	for _, rec := range records {
		views = append(views, normalize.ProjectRecipient(rec))
	}

	s.logger.Debug("Listed recipients", zap.Int("count", len(views)))
	return views, nil
}

// GetByID scans the fetched recipient collection for an exact id match.
func (s *RecipientService) GetByID(ctx context.Context, id string) (*domain.RecipientView, error) {
	raw, err := s.client.Get(ctx, "/recipients")
	if err != nil {
		return nil, err
	}

	for _, rec := range normalize.UnwrapRecords(raw, normalize.RecipientListKeys...) {
		if candidate, ok := normalize.StringField(rec, normalize.RecipientIDKeys...); ok && candidate == id {
			view := normalize.ProjectRecipient(rec)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}
