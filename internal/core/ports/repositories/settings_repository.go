package repositories

import (
	"context"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// SettingsRepository holds the exchange office settings record. Updates
// replace the whole record; callers merge partial changes client-side first.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error)
}
