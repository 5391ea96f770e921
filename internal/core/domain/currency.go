package domain

import "github.com/shopspring/decimal"

// CurrencyRecord holds the quoted rates and stock level for one currency.
// Rates are expressed in units of base currency per 1 unit of this currency.
// Records are value objects; every ledger operation returns new slices
// instead of mutating in place.
type CurrencyRecord struct {
	Currency               string          `json:"currency"` // short code, e.g. "USD"; identity key
	BuyRate                decimal.Decimal `json:"buyRate"`
	SellRate               decimal.Decimal `json:"sellRate"`
	Amount                 decimal.Decimal `json:"amount"` // current stock
	WarningThresholdAmount decimal.Decimal `json:"warningThresholdAmount"`
}

// IsLowStock reports whether the stock level is below the warning threshold.
func (c CurrencyRecord) IsLowStock() bool {
	return c.Amount.LessThan(c.WarningThresholdAmount)
}

// RateQuotes maps currency codes to reference rates as fetched from the
// external rate source. A rate is expressed as units of that currency per
// 1 unit of base currency.
type RateQuotes map[string]decimal.Decimal
