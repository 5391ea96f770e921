package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kioskfx/currency_exchange_app/internal/core/ports/repositories"
)

// TradingService prices trades and executes them against the ledger.
type TradingService struct {
	ledgerRepo   portsrepo.LedgerRepository
	settingsRepo portsrepo.SettingsRepository
}

// NewTradingService creates a new TradingService.
func NewTradingService(ledgerRepo portsrepo.LedgerRepository, settingsRepo portsrepo.SettingsRepository) *TradingService {
	return &TradingService{
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
	}
}

// QuoteTrade computes a price preview for the given trade. It is pure with
// respect to the ledger: callers use it to render the preview and to decide
// whether confirmation may be enabled.
func (s *TradingService) QuoteTrade(ctx context.Context, currency string, direction domain.TradeDirection, amount decimal.Decimal) (*domain.Quote, error) {
	settings, record, err := s.lookupPair(ctx, currency)
	if err != nil {
		return nil, err
	}

	quote, err := domain.PriceTrade(*record, settings, direction, amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &quote, nil
}

// ExecuteTrade re-prices the trade and commits both stock legs as a single
// ledger transition.
func (s *TradingService) ExecuteTrade(ctx context.Context, currency string, direction domain.TradeDirection, amount decimal.Decimal) (*domain.Transaction, error) {
	quote, err := s.QuoteTrade(ctx, currency, direction, amount)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings in service: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Currency:      currency,
		Direction:     direction,
		Amount:        amount,
		Total:         quote.Total,
		ExecutedAt:    time.Now().UTC(),
	}

	if _, err := s.ledgerRepo.ApplyTransaction(ctx, settings.BaseCurrency, txn); err != nil {
		return nil, fmt.Errorf("failed to apply transaction %s: %w", txn.TransactionID, err)
	}
	return &txn, nil
}

// lookupPair loads the settings and the traded currency record, rejecting
// trades against the base currency itself.
func (s *TradingService) lookupPair(ctx context.Context, currency string) (domain.Settings, *domain.CurrencyRecord, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, nil, fmt.Errorf("failed to load settings in service: %w", err)
	}
	if currency == settings.BaseCurrency {
		return domain.Settings{}, nil, fmt.Errorf("%w: cannot trade the base currency %s against itself", apperrors.ErrValidation, currency)
	}

	record, err := s.ledgerRepo.FindCurrencyByCode(ctx, currency)
	if err != nil {
		return domain.Settings{}, nil, fmt.Errorf("failed to find currency %q in service: %w", currency, err)
	}
	return settings, record, nil
}
