// Package memory holds the in-memory stores backing the kiosk session.
// There is no persistence: state is seeded at startup and discarded on exit.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// LedgerRepository holds the currency ledger snapshot. Writers replace the
// snapshot under the write lock with the value produced by the pure ledger
// functions, so imports and trades touching the same ledger are applied one
// at a time. Readers receive copies and can never observe a half-applied
// transition.
type LedgerRepository struct {
	mu            sync.RWMutex
	records       []domain.CurrencyRecord
	lastUpdatedAt time.Time
	lastError     string
}

// NewLedgerRepository creates a ledger store seeded with the given records.
func NewLedgerRepository(seed []domain.CurrencyRecord) *LedgerRepository {
	return &LedgerRepository{records: copyRecords(seed)}
}

func (r *LedgerRepository) ListCurrencies(ctx context.Context) ([]domain.CurrencyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyRecords(r.records), nil
}

func (r *LedgerRepository) FindCurrencyByCode(ctx context.Context, currency string) (*domain.CurrencyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := domain.FindCurrency(r.records, currency)
	if !ok {
		return nil, fmt.Errorf("%w: currency %q", apperrors.ErrNotFound, currency)
	}
	return &record, nil
}

func (r *LedgerRepository) Status(ctx context.Context) (domain.LedgerStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.LedgerStatus{
		LastUpdatedAt: r.lastUpdatedAt,
		LastError:     r.lastError,
	}, nil
}

func (r *LedgerRepository) UpdateAmount(ctx context.Context, currency string, delta decimal.Decimal) ([]domain.CurrencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = domain.UpdateAmount(r.records, currency, delta)
	return copyRecords(r.records), nil
}

// UpdateExchangeRates replaces the held quotes, stamps the refresh time and
// clears any previous fetch error.
func (r *LedgerRepository) UpdateExchangeRates(ctx context.Context, newRates []domain.CurrencyRecord) ([]domain.CurrencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = domain.UpdateExchangeRates(r.records, newRates)
	r.lastUpdatedAt = time.Now().UTC()
	r.lastError = ""
	return copyRecords(r.records), nil
}

func (r *LedgerRepository) ApplyTransaction(ctx context.Context, baseCurrency string, txn domain.Transaction) ([]domain.CurrencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = domain.ApplyTransaction(r.records, baseCurrency, txn)
	return copyRecords(r.records), nil
}

func (r *LedgerRepository) SetLastError(ctx context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastError = message
	return nil
}

func copyRecords(records []domain.CurrencyRecord) []domain.CurrencyRecord {
	out := make([]domain.CurrencyRecord, len(records))
	copy(out, records)
	return out
}
