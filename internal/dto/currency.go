package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a ledger currency.
type CurrencyResponse struct {
	Currency               string          `json:"currency"`
	BuyRate                decimal.Decimal `json:"buyRate"`
	SellRate               decimal.Decimal `json:"sellRate"`
	Amount                 decimal.Decimal `json:"amount"`
	WarningThresholdAmount decimal.Decimal `json:"warningThresholdAmount"`
	LowStock               bool            `json:"lowStock"`
}

// AdjustAmountRequest defines a manual stock correction for a currency.
// Delta may be negative to remove stock.
type AdjustAmountRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
}

// ToCurrencyResponse converts a domain.CurrencyRecord to CurrencyResponse DTO
func ToCurrencyResponse(record *domain.CurrencyRecord) CurrencyResponse {
	return CurrencyResponse{
		Currency:               record.Currency,
		BuyRate:                record.BuyRate,
		SellRate:               record.SellRate,
		Amount:                 record.Amount,
		WarningThresholdAmount: record.WarningThresholdAmount,
		LowStock:               record.IsLowStock(),
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyRecord to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(records []domain.CurrencyRecord) []CurrencyResponse {
	res := make([]CurrencyResponse, len(records))
	for i, record := range records {
		res[i] = ToCurrencyResponse(&record)
	}
	return res
}
