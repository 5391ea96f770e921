package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TradeDirection indicates which side of a trade the office is on: Buy means
// the office buys foreign currency from the customer, Sell means it sells.
// The numeric values double as the sign of the stock delta for the traded
// currency.
type TradeDirection int

const (
	Buy  TradeDirection = 1
	Sell TradeDirection = -1
)

// ParseTradeDirection converts the wire representation ("BUY"/"SELL") into a
// TradeDirection.
func ParseTradeDirection(s string) (TradeDirection, error) {
	switch s {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade direction %q", s)
	}
}

func (d TradeDirection) String() string {
	if d == Buy {
		return "BUY"
	}
	return "SELL"
}

// Quote is the priced preview of a single buy/sell trade. Subtotal,
// Commission and Total are denominated in the base currency.
type Quote struct {
	Currency   string          `json:"currency"`
	Direction  TradeDirection  `json:"-"`
	Amount     decimal.Decimal `json:"amount"` // traded-currency units
	Rate       decimal.Decimal `json:"rate"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Commission decimal.Decimal `json:"commission"`
	Total      decimal.Decimal `json:"total"`
	MaxAmount  decimal.Decimal `json:"maxAmount"` // upper bound the stock supports
}

// Transaction is a confirmed trade ready to be applied to the ledger.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Currency      string          `json:"currency"`
	Direction     TradeDirection  `json:"direction"`
	Amount        decimal.Decimal `json:"amount"` // traded-currency units
	Total         decimal.Decimal `json:"total"`  // base-currency units, commission included
	ExecutedAt    time.Time       `json:"executedAt"`
}

// LedgerStatus carries the refresh bookkeeping shown on the kiosk banner.
type LedgerStatus struct {
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
	LastError      string    `json:"lastError"`
	RefreshEnabled bool      `json:"refreshEnabled"`
}
