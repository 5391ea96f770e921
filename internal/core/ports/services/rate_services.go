package services

import (
	"context"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// RateRefreshSvcFacade pulls fresh reference rates and folds them into the
// ledger quotes.
type RateRefreshSvcFacade interface {
	// RefreshRates performs one refresh cycle. Returns
	// apperrors.ErrRefreshDisabled when the settings switch refreshing off;
	// fetch failures are recorded on the ledger status and the previous
	// quotes stay in place.
	RefreshRates(ctx context.Context) ([]domain.CurrencyRecord, error)

	// Status reports when quotes were last refreshed and the last fetch error.
	Status(ctx context.Context) (domain.LedgerStatus, error)
}
