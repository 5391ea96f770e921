// Package refresher runs the periodic exchange-rate refresh loop.
package refresher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	portssvc "github.com/kioskfx/currency_exchange_app/internal/core/ports/services"
	"github.com/kioskfx/currency_exchange_app/internal/platform/metrics"
)

// disabledRecheckInterval is how often the loop re-reads settings while
// refreshing is switched off, so enabling it takes effect without a restart.
const disabledRecheckInterval = 5 * time.Second

// Refresher drives the rate refresh service on the interval configured in
// settings. The interval is re-read every cycle, so settings changes apply
// from the next cycle on.
type Refresher struct {
	ratesSvc    portssvc.RateRefreshSvcFacade
	settingsSvc portssvc.SettingsSvcFacade
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewRefresher creates a refresh loop driver.
func NewRefresher(ratesSvc portssvc.RateRefreshSvcFacade, settingsSvc portssvc.SettingsSvcFacade, m *metrics.Metrics, logger *slog.Logger) *Refresher {
	return &Refresher{
		ratesSvc:    ratesSvc,
		settingsSvc: settingsSvc,
		metrics:     m,
		logger:      logger,
	}
}

// Run blocks until ctx is cancelled, refreshing rates every cycle.
func (r *Refresher) Run(ctx context.Context) {
	r.logger.Info("Rate refresher started")
	for {
		wait := r.refreshOnce(ctx)
		select {
		case <-ctx.Done():
			r.logger.Info("Rate refresher stopped")
			return
		case <-time.After(wait):
		}
	}
}

// refreshOnce performs a single cycle and returns how long to wait before the
// next one.
func (r *Refresher) refreshOnce(ctx context.Context) time.Duration {
	_, err := r.ratesSvc.RefreshRates(ctx)
	switch {
	case err == nil:
		r.metrics.RateRefreshTotal.WithLabelValues("success").Inc()
		r.logger.Info("Exchange rates refreshed")
	case errors.Is(err, apperrors.ErrRefreshDisabled):
		return disabledRecheckInterval
	default:
		r.metrics.RateRefreshTotal.WithLabelValues("error").Inc()
		r.logger.Error("Rate refresh failed", slog.String("error", err.Error()))
	}

	settings, err := r.settingsSvc.GetSettings(ctx)
	if err != nil {
		r.logger.Error("Failed to load settings for refresh interval", slog.String("error", err.Error()))
		return disabledRecheckInterval
	}
	if settings.RateRefreshInterval <= 0 {
		return disabledRecheckInterval
	}
	return time.Duration(settings.RateRefreshInterval) * time.Second
}
