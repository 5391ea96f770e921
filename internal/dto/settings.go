package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// UpdateSettingsRequest defines a full replacement of the office settings.
type UpdateSettingsRequest struct {
	BaseCurrency        string          `json:"baseCurrency" binding:"required,uppercase,len=3"`
	TradedCurrencies    []string        `json:"tradedCurrencies" binding:"required,min=1,dive,uppercase,len=3"`
	CommissionPct       decimal.Decimal `json:"commissionPct"`
	Surcharge           decimal.Decimal `json:"surcharge"`
	MinCommission       decimal.Decimal `json:"minCommission"`
	MarginPct           decimal.Decimal `json:"marginPct"`
	RateRefreshInterval int             `json:"rateRefreshInterval" binding:"gte=0"`
}

// SettingsResponse defines the data returned for the office settings.
type SettingsResponse struct {
	BaseCurrency        string          `json:"baseCurrency"`
	TradedCurrencies    []string        `json:"tradedCurrencies"`
	CommissionPct       decimal.Decimal `json:"commissionPct"`
	Surcharge           decimal.Decimal `json:"surcharge"`
	MinCommission       decimal.Decimal `json:"minCommission"`
	MarginPct           decimal.Decimal `json:"marginPct"`
	RateRefreshInterval int             `json:"rateRefreshInterval"`
	RefreshEnabled      bool            `json:"refreshEnabled"`
}

// ToSettings converts an UpdateSettingsRequest to the domain record.
func ToSettings(req *UpdateSettingsRequest) domain.Settings {
	return domain.Settings{
		BaseCurrency:        req.BaseCurrency,
		TradedCurrencies:    req.TradedCurrencies,
		CommissionPct:       req.CommissionPct,
		Surcharge:           req.Surcharge,
		MinCommission:       req.MinCommission,
		MarginPct:           req.MarginPct,
		RateRefreshInterval: req.RateRefreshInterval,
	}
}

// ToSettingsResponse converts a domain.Settings to SettingsResponse DTO
func ToSettingsResponse(settings *domain.Settings) SettingsResponse {
	return SettingsResponse{
		BaseCurrency:        settings.BaseCurrency,
		TradedCurrencies:    settings.TradedCurrencies,
		CommissionPct:       settings.CommissionPct,
		Surcharge:           settings.Surcharge,
		MinCommission:       settings.MinCommission,
		MarginPct:           settings.MarginPct,
		RateRefreshInterval: settings.RateRefreshInterval,
		RefreshEnabled:      settings.RefreshEnabled(),
	}
}
