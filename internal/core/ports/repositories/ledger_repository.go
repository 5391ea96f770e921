package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// LedgerReader defines read operations on the currency ledger.
type LedgerReader interface {
	// ListCurrencies returns a snapshot of all currency records in display order.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyRecord, error)

	// FindCurrencyByCode retrieves a single record, or apperrors.ErrNotFound.
	FindCurrencyByCode(ctx context.Context, currency string) (*domain.CurrencyRecord, error)

	// Status returns the refresh bookkeeping for the held ledger.
	Status(ctx context.Context) (domain.LedgerStatus, error)
}

// LedgerWriter defines the ledger transitions. Each call replaces the held
// snapshot with a new one produced under the store's write lock, which is
// what serializes imports and trades touching the same ledger.
type LedgerWriter interface {
	// UpdateAmount changes one currency's stock by delta and returns the new
	// snapshot.
	UpdateAmount(ctx context.Context, currency string, delta decimal.Decimal) ([]domain.CurrencyRecord, error)

	// UpdateExchangeRates copies buy/sell rates from newRates into the held
	// ledger, stamps the last-updated time and clears the last error.
	UpdateExchangeRates(ctx context.Context, newRates []domain.CurrencyRecord) ([]domain.CurrencyRecord, error)

	// ApplyTransaction applies both legs of a trade as one transition.
	ApplyTransaction(ctx context.Context, baseCurrency string, txn domain.Transaction) ([]domain.CurrencyRecord, error)

	// SetLastError records a refresh failure without touching the records.
	SetLastError(ctx context.Context, message string) error
}

// LedgerRepository combines ledger read and write operations.
type LedgerRepository interface {
	LedgerReader
	LedgerWriter
}
