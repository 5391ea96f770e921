package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// LedgerReaderSvc defines read operations for the currency ledger.
type LedgerReaderSvc interface {
	// ListCurrencies retrieves all records in display order.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyRecord, error)

	// GetCurrencyByCode retrieves a single record by its currency code.
	GetCurrencyByCode(ctx context.Context, currency string) (*domain.CurrencyRecord, error)
}

// LedgerWriterSvc defines administrative write operations on the ledger.
type LedgerWriterSvc interface {
	// AdjustAmount changes a currency's stock by delta (restock or withdrawal).
	AdjustAmount(ctx context.Context, currency string, delta decimal.Decimal) ([]domain.CurrencyRecord, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
