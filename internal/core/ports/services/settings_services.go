package services

import (
	"context"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// SettingsSvcFacade reads and replaces the exchange office settings.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (domain.Settings, error)

	// UpdateSettings validates and stores a full replacement settings record.
	UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error)
}
