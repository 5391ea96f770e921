package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// TradeRequest defines the data needed to price or execute a trade.
// Amount is denominated in the traded currency for both directions.
type TradeRequest struct {
	Currency  string          `json:"currency" binding:"required,uppercase,len=3"`
	Direction string          `json:"direction" binding:"required,oneof=BUY SELL"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// QuoteResponse defines the priced breakdown returned for a trade request.
type QuoteResponse struct {
	Currency   string          `json:"currency"`
	Direction  string          `json:"direction"`
	Amount     decimal.Decimal `json:"amount"`
	Rate       decimal.Decimal `json:"rate"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Commission decimal.Decimal `json:"commission"`
	Total      decimal.Decimal `json:"total"`
	MaxAmount  decimal.Decimal `json:"maxAmount"`
}

// TransactionResponse defines the data returned for an executed trade.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Currency      string          `json:"currency"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	Total         decimal.Decimal `json:"total"`
	ExecutedAt    time.Time       `json:"executedAt"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(quote *domain.Quote) QuoteResponse {
	return QuoteResponse{
		Currency:   quote.Currency,
		Direction:  quote.Direction.String(),
		Amount:     quote.Amount,
		Rate:       quote.Rate,
		Subtotal:   quote.Subtotal,
		Commission: quote.Commission,
		Total:      quote.Total,
		MaxAmount:  quote.MaxAmount,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Currency:      txn.Currency,
		Direction:     txn.Direction.String(),
		Amount:        txn.Amount,
		Total:         txn.Total,
		ExecutedAt:    txn.ExecutedAt,
	}
}
