package domain

import "github.com/shopspring/decimal"

// Settings holds the exchange office configuration. Rates, commissions and
// totals are all denominated in the base currency.
type Settings struct {
	BaseCurrency        string          `json:"baseCurrency"`
	TradedCurrencies    []string        `json:"tradedCurrencies"`
	CommissionPct       decimal.Decimal `json:"commissionPct"` // % of the base-currency notional
	Surcharge           decimal.Decimal `json:"surcharge"`     // fixed base-currency amount added before the % commission
	MinCommission       decimal.Decimal `json:"minCommission"` // floor on the computed commission
	MarginPct           decimal.Decimal `json:"marginPct"`     // half-spread % applied symmetrically around the mid rate
	RateRefreshInterval int             `json:"rateRefreshInterval"` // seconds; 0 or negative disables refresh
}

// RefreshEnabled reports whether periodic rate refreshing is switched on.
func (s Settings) RefreshEnabled() bool {
	return s.RateRefreshInterval > 0
}
