package services

import (
	"context"
	"fmt"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kioskfx/currency_exchange_app/internal/core/ports/repositories"
)

// RateRefreshService pulls reference rates from the external source and
// imports them into the ledger quotes.
type RateRefreshService struct {
	rateSource   portsrepo.RateSource
	ledgerRepo   portsrepo.LedgerRepository
	settingsRepo portsrepo.SettingsRepository
	importer     *domain.RateImporter
}

// NewRateRefreshService creates a new RateRefreshService.
func NewRateRefreshService(
	rateSource portsrepo.RateSource,
	ledgerRepo portsrepo.LedgerRepository,
	settingsRepo portsrepo.SettingsRepository,
	importer *domain.RateImporter,
) *RateRefreshService {
	return &RateRefreshService{
		rateSource:   rateSource,
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		importer:     importer,
	}
}

// RefreshRates performs one refresh cycle and returns the updated ledger.
//
// A disabled refresh interval yields apperrors.ErrRefreshDisabled so callers
// can surface the condition instead of treating it as a failure. A fetch
// failure is recorded on the ledger status and the previous quotes stay in
// place; no error here is fatal — the worst case is a stale ledger.
func (s *RateRefreshService) RefreshRates(ctx context.Context) ([]domain.CurrencyRecord, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings in service: %w", err)
	}
	if !settings.RefreshEnabled() {
		return nil, apperrors.ErrRefreshDisabled
	}

	fetched, err := s.rateSource.FetchRates(ctx, settings.BaseCurrency)
	if err != nil {
		if setErr := s.ledgerRepo.SetLastError(ctx, err.Error()); setErr != nil {
			return nil, fmt.Errorf("failed to record fetch error: %w", setErr)
		}
		return nil, fmt.Errorf("failed to fetch reference rates: %w", err)
	}

	ledger, err := s.ledgerRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}

	imported := s.importer.ImportRates(fetched, ledger, settings)

	updated, err := s.ledgerRepo.UpdateExchangeRates(ctx, imported)
	if err != nil {
		return nil, fmt.Errorf("failed to store imported rates: %w", err)
	}
	return updated, nil
}

// Status reports the refresh bookkeeping combined with whether refreshing is
// currently enabled.
func (s *RateRefreshService) Status(ctx context.Context) (domain.LedgerStatus, error) {
	status, err := s.ledgerRepo.Status(ctx)
	if err != nil {
		return domain.LedgerStatus{}, fmt.Errorf("failed to load ledger status in service: %w", err)
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.LedgerStatus{}, fmt.Errorf("failed to load settings in service: %w", err)
	}
	status.RefreshEnabled = settings.RefreshEnabled()
	return status, nil
}
