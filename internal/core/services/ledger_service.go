package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kioskfx/currency_exchange_app/internal/core/ports/repositories"
)

// LedgerService provides read access to the currency ledger and the
// administrative stock adjustment.
type LedgerService struct {
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

func (s *LedgerService) ListCurrencies(ctx context.Context) ([]domain.CurrencyRecord, error) {
	records, err := s.ledgerRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if records == nil {
		return []domain.CurrencyRecord{}, nil
	}
	return records, nil
}

func (s *LedgerService) GetCurrencyByCode(ctx context.Context, currency string) (*domain.CurrencyRecord, error) {
	record, err := s.ledgerRepo.FindCurrencyByCode(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %q in service: %w", currency, err)
	}
	return record, nil
}

// AdjustAmount changes a currency's stock by delta. The currency must exist;
// the delta may be negative, which can legitimately drive the stock below
// the warning threshold (the ledger view flags that).
func (s *LedgerService) AdjustAmount(ctx context.Context, currency string, delta decimal.Decimal) ([]domain.CurrencyRecord, error) {
	if _, err := s.ledgerRepo.FindCurrencyByCode(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to adjust amount for %q: %w", currency, err)
	}

	updated, err := s.ledgerRepo.UpdateAmount(ctx, currency, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust amount for %q: %w", currency, err)
	}
	return updated, nil
}
