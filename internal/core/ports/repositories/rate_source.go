package repositories

import (
	"context"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// RateSource fetches reference rates from the external provider. The result
// maps currency codes to rates expressed as units of that currency per 1 unit
// of the given base currency. Entries the provider reports in a malformed way
// are dropped by the implementation rather than failing the batch.
type RateSource interface {
	FetchRates(ctx context.Context, baseCurrency string) (domain.RateQuotes, error)
}
