package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"learnhub/internal/model"
	"learnhub/internal/repository"
)

// MaintenanceService runs the periodic housekeeping jobs.
type MaintenanceService struct {
	subscriptions repository.Repository[model.Subscription]
	coupons       repository.Repository[model.Coupon]
	now           func() time.Time
}

// NewMaintenanceService builds a MaintenanceService. now defaults to time.Now.
func NewMaintenanceService(
	subscriptions repository.Repository[model.Subscription],
	coupons repository.Repository[model.Coupon],
	now func() time.Time,
) *MaintenanceService {
	if now == nil {
		now = time.Now
	}
	return &MaintenanceService{subscriptions: subscriptions, coupons: coupons, now: now}
}

// ExpireSubscriptions marks active subscriptions whose end date passed as expired.
func (s *MaintenanceService) ExpireSubscriptions(ctx context.Context) (int64, error) {
	n, err := s.subscriptions.UpdateWhere(ctx,
		map[string]interface{}{"status": model.SubscriptionExpired},
		repository.EndedBefore(s.now(), model.SubscriptionActive),
	)
	if err != nil {
		return 0, fmt.Errorf("expire subscriptions: %w", err)
	}
	return n, nil
}

// DeactivateExpiredCoupons marks active coupons past their expiry as inactive.
func (s *MaintenanceService) DeactivateExpiredCoupons(ctx context.Context) (int64, error) {
	n, err := s.coupons.UpdateWhere(ctx,
		map[string]interface{}{"status": model.StatusInactive},
		repository.ExpiredCoupons(s.now()),
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate coupons: %w", err)
	}
	return n, nil
}

// Run executes every job once. Cached entries are left to expire on their own TTL.
func (s *MaintenanceService) Run(ctx context.Context) {
	if n, err := s.ExpireSubscriptions(ctx); err != nil {
		log.Error().Err(err).Msg("maintenance")
	} else if n > 0 {
		log.Info().Int64("count", n).Msg("subscriptions expired")
	}
	if n, err := s.DeactivateExpiredCoupons(ctx); err != nil {
		log.Error().Err(err).Msg("maintenance")
	} else if n > 0 {
		log.Info().Int64("count", n).Msg("coupons deactivated")
	}
}
