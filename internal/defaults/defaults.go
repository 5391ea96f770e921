// Package defaults holds the seed state the kiosk starts a session with.
// The ledger lives only in memory, so every process start begins from here.
package defaults

import (
	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// Currencies returns the seed ledger. The base currency is a member of the
// same list; display order is list order.
func Currencies() []domain.CurrencyRecord {
	return []domain.CurrencyRecord{
		record("USD", "1", "1", "10000", "2500"),
		record("EUR", "1.14", "1.15", "1000", "250"),
		record("GBP", "1.3", "1.35", "1000", "250"),
		record("CAD", "0.8", "0.9", "1000", "250"),
		record("AUD", "0.85", "0.95", "1000", "250"),
		record("CNY", "6", "7", "1000", "250"),
		record("SGD", "0.65", "0.75", "1000", "250"),
	}
}

// Settings returns the seed settings.
func Settings() domain.Settings {
	return domain.Settings{
		BaseCurrency:        "USD",
		TradedCurrencies:    []string{"EUR", "GBP", "CAD", "AUD", "CNY", "SGD"},
		CommissionPct:       decimal.NewFromInt(2),
		Surcharge:           decimal.NewFromInt(1),
		MinCommission:       decimal.NewFromInt(3),
		MarginPct:           decimal.NewFromInt(10),
		RateRefreshInterval: 10,
	}
}

func record(code, buy, sell, amount, warnAt string) domain.CurrencyRecord {
	return domain.CurrencyRecord{
		Currency:               code,
		BuyRate:                decimal.RequireFromString(buy),
		SellRate:               decimal.RequireFromString(sell),
		Amount:                 decimal.RequireFromString(amount),
		WarningThresholdAmount: decimal.RequireFromString(warnAt),
	}
}
