package domain

import "github.com/shopspring/decimal"

// FindCurrency looks up a record by currency code.
func FindCurrency(ledger []CurrencyRecord, currency string) (CurrencyRecord, bool) {
	for _, c := range ledger {
		if c.Currency == currency {
			return c, true
		}
	}
	return CurrencyRecord{}, false
}

// UpdateAmount returns a new ledger with the stock of the given currency
// changed by delta. An unknown currency code leaves the ledger unchanged.
func UpdateAmount(ledger []CurrencyRecord, currency string, delta decimal.Decimal) []CurrencyRecord {
	updated := make([]CurrencyRecord, len(ledger))
	for i, c := range ledger {
		if c.Currency == currency {
			c.Amount = c.Amount.Add(delta)
		}
		updated[i] = c
	}
	return updated
}

// UpdateExchangeRates returns a new ledger with buy/sell rates copied from
// the matching records in newRates. Stock amounts and ordering are preserved;
// records without a match pass through unchanged.
func UpdateExchangeRates(ledger []CurrencyRecord, newRates []CurrencyRecord) []CurrencyRecord {
	updated := make([]CurrencyRecord, len(ledger))
	for i, c := range ledger {
		if r, ok := FindCurrency(newRates, c.Currency); ok {
			c.BuyRate = r.BuyRate
			c.SellRate = r.SellRate
		}
		updated[i] = c
	}
	return updated
}

// ApplyTransaction returns a new ledger with both legs of the trade applied:
// the traded currency stock changes by direction*amount and the base currency
// stock by -direction*total. Both legs land in the same ledger transition so
// a reader can never observe a half-applied trade. An unknown currency code
// leaves that leg untouched; the service layer validates existence up front,
// so through the API this branch is unreachable.
func ApplyTransaction(ledger []CurrencyRecord, baseCurrency string, txn Transaction) []CurrencyRecord {
	dir := decimal.NewFromInt(int64(txn.Direction))
	updated := make([]CurrencyRecord, len(ledger))
	for i, c := range ledger {
		switch c.Currency {
		case txn.Currency:
			c.Amount = c.Amount.Add(dir.Mul(txn.Amount))
		case baseCurrency:
			c.Amount = c.Amount.Sub(dir.Mul(txn.Total))
		}
		updated[i] = c
	}
	return updated
}
