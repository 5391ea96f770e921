package memory

import (
	"context"
	"sync"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// SettingsRepository holds the settings record. Updates replace the whole
// record; there is no partial-field update at this boundary.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsRepository creates a settings store seeded with the given record.
func NewSettingsRepository(seed domain.Settings) *SettingsRepository {
	return &SettingsRepository{settings: copySettings(seed)}
}

func (r *SettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySettings(r.settings), nil
}

func (r *SettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = copySettings(settings)
	return copySettings(r.settings), nil
}

// copySettings clones the record so callers cannot alias the held slice.
func copySettings(s domain.Settings) domain.Settings {
	traded := make([]string, len(s.TradedCurrencies))
	copy(traded, s.TradedCurrencies)
	s.TradedCurrencies = traded
	return s
}
