package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// TradingSvcFacade prices and executes buy/sell trades against the ledger.
type TradingSvcFacade interface {
	// QuoteTrade computes a price preview without touching the ledger.
	QuoteTrade(ctx context.Context, currency string, direction domain.TradeDirection, amount decimal.Decimal) (*domain.Quote, error)

	// ExecuteTrade re-prices the trade and applies both stock legs atomically.
	ExecuteTrade(ctx context.Context, currency string, direction domain.TradeDirection, amount decimal.Decimal) (*domain.Transaction, error)
}
