package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kioskfx/currency_exchange_app/internal/core/ports/repositories"
)

// SettingsService reads and replaces the exchange office settings.
type SettingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to get settings in service: %w", err)
	}
	return settings, nil
}

// UpdateSettings validates and stores a full replacement settings record.
// Currency codes are normalized to upper case. A refresh interval of zero or
// less is accepted; it switches periodic refreshing off.
func (s *SettingsService) UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	settings.BaseCurrency = strings.ToUpper(strings.TrimSpace(settings.BaseCurrency))
	if len(settings.BaseCurrency) != 3 {
		return domain.Settings{}, fmt.Errorf("%w: base currency must be a 3-letter code", apperrors.ErrValidation)
	}
	for i, code := range settings.TradedCurrencies {
		settings.TradedCurrencies[i] = strings.ToUpper(strings.TrimSpace(code))
	}

	hundred := decimal.NewFromInt(100)
	if settings.CommissionPct.IsNegative() || settings.CommissionPct.GreaterThan(hundred) {
		return domain.Settings{}, fmt.Errorf("%w: commission must be between 0 and 100 percent", apperrors.ErrValidation)
	}
	if settings.Surcharge.IsNegative() {
		return domain.Settings{}, fmt.Errorf("%w: surcharge must not be negative", apperrors.ErrValidation)
	}
	if settings.MinCommission.IsNegative() {
		return domain.Settings{}, fmt.Errorf("%w: minimal commission must not be negative", apperrors.ErrValidation)
	}
	if settings.MarginPct.IsNegative() {
		return domain.Settings{}, fmt.Errorf("%w: margin must not be negative", apperrors.ErrValidation)
	}

	updated, err := s.settingsRepo.UpdateSettings(ctx, settings)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to update settings in service: %w", err)
	}
	return updated, nil
}
