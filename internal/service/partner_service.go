package service

import (
	"context"

	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/normalize"
	"github.com/naf3/admin-console-api/internal/upstream"
	"go.uber.org/zap"
)

// PartnerService fetches and normalizes partner accounts. The backend is the
// single source of truth; every call performs a fresh fetch.
type PartnerService struct {
	client *upstream.Client
	logger *zap.Logger
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(client *upstream.Client, logger *zap.Logger) *PartnerService {
	return &PartnerService{client: client, logger: logger}
}

// List returns all partners as view models, in backend order.
func (s *PartnerService) List(ctx context.Context) ([]domain.PartnerView, error) {
	raw, err := s.client.Get(ctx, "/partners")
	if err != nil {
		return nil, err
	}

	records := normalize.UnwrapRecords(raw, normalize.PartnerListKeys...)
	views := make([]domain.PartnerView, 0, len(records))
	for _, rec := range records {
		views = append(views, normalize.ProjectPartner(rec))
	}

	s.logger.Debug("Listed partners", zap.Int("count", len(views)))
	return views, nil
}

// GetByID fetches the full partner collection and scans it for the record
// whose id matches exactly. A missing record is ErrNotFound, not a failure.
func (s *PartnerService) GetByID(ctx context.Context, id string) (*domain.PartnerView, error) {
	raw, err := s.client.Get(ctx, "/partners")
	if err != nil {
		return nil, err
	}

	for _, rec := range normalize.UnwrapRecords(raw, normalize.PartnerListKeys...) {
		if candidate, ok := normalize.StringField(rec, normalize.PartnerIDKeys...); ok && candidate == id {
			view := normalize.ProjectPartner(rec)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}

// RedeemPoints forwards a redemption to the partner network and relays the
// backend's response as-is. This is the gateway's only write operation.
func (s *PartnerService) RedeemPoints(ctx context.Context, req *domain.RedeemRequest) (any, error) {
	result, err := s.client.Post(ctx, "/partners/redeem-points", req)
	if err != nil {
		s.logger.Warn("Redeem points failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}
