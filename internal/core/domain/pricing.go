package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxTradeAmount returns the largest traded-currency amount the current stock
// supports. Buying foreign currency is capped by the base-currency value of
// the stock at the buy rate (floored to cents); selling is capped by the
// stock itself.
func MaxTradeAmount(rec CurrencyRecord, direction TradeDirection) decimal.Decimal {
	if direction == Buy {
		return rec.Amount.Mul(rec.BuyRate).RoundFloor(2)
	}
	return rec.Amount
}

// PriceTrade computes the subtotal, commission and total for a single trade.
// All three are denominated in the base currency. The requested amount must
// lie in (0, MaxTradeAmount]; a violation is a validation failure, not a
// system error.
//
// The commission is computed on the base-currency notional, floored at the
// minimum commission, and for a Buy converted back through the buy rate into
// the subtotal's unit before rounding. Both legs round to 2 decimals
// independently; do not algebraically fold the conversion into the notional,
// the rounding points matter.
func PriceTrade(rec CurrencyRecord, settings Settings, direction TradeDirection, amount decimal.Decimal) (Quote, error) {
	rate := rec.BuyRate
	if direction == Sell {
		rate = rec.SellRate
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return Quote{}, fmt.Errorf("no positive %s rate quoted for %s", direction, rec.Currency)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Quote{}, errors.New("amount must be positive")
	}
	maxAmount := MaxTradeAmount(rec, direction)
	if amount.GreaterThan(maxAmount) {
		return Quote{}, fmt.Errorf("amount %s %s exceeds the maximum of %s supported by current stock",
			amount, rec.Currency, maxAmount)
	}

	baseNotional := amount
	if direction == Buy {
		baseNotional = amount.Mul(rate)
	}

	subtotal := amount.Mul(rate).Round(2)

	rawCommission := settings.Surcharge.Add(baseNotional.Mul(settings.CommissionPct).Div(hundred))
	if rawCommission.LessThan(settings.MinCommission) {
		rawCommission = settings.MinCommission
	}
	commission := rawCommission
	if direction == Buy {
		commission = rawCommission.Div(rate)
	}
	commission = commission.Round(2)

	return Quote{
		Currency:   rec.Currency,
		Direction:  direction,
		Amount:     amount,
		Rate:       rate,
		Subtotal:   subtotal,
		Commission: commission,
		Total:      subtotal.Add(commission),
		MaxAmount:  maxAmount,
	}, nil
}
