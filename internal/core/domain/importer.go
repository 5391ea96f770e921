package domain

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

var (
	one        = decimal.NewFromInt(1)
	hundred    = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

// maxJitterFraction bounds the anti-staleness perturbation at ±5% of the mid
// rate.
const maxJitterFraction = 0.05

// RateImporter converts externally fetched reference rates into quoted
// buy/sell rates. The jitter source is injectable so tests can pin the
// perturbation down to a known value.
type RateImporter struct {
	jitter func() float64
}

// NewRateImporter returns an importer with the default random jitter source.
func NewRateImporter() *RateImporter {
	return NewRateImporterWithJitter(defaultJitter)
}

// NewRateImporterWithJitter returns an importer whose anti-staleness
// perturbation is drawn from the given function. The function must return a
// fraction in [-maxJitterFraction, maxJitterFraction].
func NewRateImporterWithJitter(jitter func() float64) *RateImporter {
	return &RateImporter{jitter: jitter}
}

func defaultJitter() float64 {
	return (rand.Float64()*2 - 1) * maxJitterFraction
}

// ImportRates returns a new ledger with buy/sell quotes derived from the
// fetched reference rates. A fetched rate is expressed as units of currency
// per 1 base unit, so it is inverted into a mid rate (base units per currency
// unit, 4 decimals) before the half-spread margin is applied on each side.
//
// Records for the base currency, records missing from fetched, and records
// whose fetched rate is not a positive number pass through unchanged, leaving
// the previous quote in place. Result ordering matches the input ledger.
//
// When the freshly derived quote is identical to the record's current one,
// the mid rate is perturbed by a random fraction of up to ±5% and the quote
// recomputed, so the board visibly moves on every refresh tick even when the
// upstream data is static. Simulated liveliness, not a correctness rule.
func (ri *RateImporter) ImportRates(fetched RateQuotes, ledger []CurrencyRecord, settings Settings) []CurrencyRecord {
	updated := make([]CurrencyRecord, len(ledger))
	for i, c := range ledger {
		updated[i] = ri.importRecord(fetched, c, settings)
	}
	return updated
}

func (ri *RateImporter) importRecord(fetched RateQuotes, c CurrencyRecord, settings Settings) CurrencyRecord {
	if c.Currency == settings.BaseCurrency {
		return c
	}
	ref, ok := fetched[c.Currency]
	if !ok || ref.LessThanOrEqual(decimal.Zero) {
		return c
	}

	mid := one.Div(ref).Round(4)
	buy, sell := quoteFromMid(mid, settings.MarginPct)
	if buy.Equal(c.BuyRate) && sell.Equal(c.SellRate) {
		mid = mid.Mul(decimal.NewFromFloat(1 + ri.jitter()))
		buy, sell = quoteFromMid(mid, settings.MarginPct)
	}

	c.BuyRate = buy
	c.SellRate = sell
	return c
}

// quoteFromMid derives the buy/sell pair by applying half the margin on each
// side of the mid rate, rounded to 4 decimals.
func quoteFromMid(mid, marginPct decimal.Decimal) (buy, sell decimal.Decimal) {
	halfSpread := marginPct.Div(twoHundred)
	buy = mid.Mul(one.Sub(halfSpread)).Round(4)
	sell = mid.Mul(one.Add(halfSpread)).Round(4)
	return buy, sell
}
