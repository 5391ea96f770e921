package dto

import (
	"time"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// RatesStatusResponse defines the refresh bookkeeping returned to clients.
// LastUpdatedAt is omitted until the first successful refresh.
type RatesStatusResponse struct {
	LastUpdatedAt  *time.Time `json:"lastUpdatedAt,omitempty"`
	LastError      string     `json:"lastError,omitempty"`
	RefreshEnabled bool       `json:"refreshEnabled"`
}

// ToRatesStatusResponse converts a domain.LedgerStatus to RatesStatusResponse DTO
func ToRatesStatusResponse(status *domain.LedgerStatus) RatesStatusResponse {
	resp := RatesStatusResponse{
		LastError:      status.LastError,
		RefreshEnabled: status.RefreshEnabled,
	}
	if !status.LastUpdatedAt.IsZero() {
		t := status.LastUpdatedAt
		resp.LastUpdatedAt = &t
	}
	return resp
}
