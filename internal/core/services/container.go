package services

import (
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kioskfx/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kioskfx/currency_exchange_app/internal/core/ports/services"
)

// NewServiceContainer wires the concrete services behind their facades.
func NewServiceContainer(
	ledgerRepo portsrepo.LedgerRepository,
	settingsRepo portsrepo.SettingsRepository,
	rateSource portsrepo.RateSource,
	importer *domain.RateImporter,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:      NewLedgerService(ledgerRepo),
		Trading:     NewTradingService(ledgerRepo, settingsRepo),
		RateRefresh: NewRateRefreshService(rateSource, ledgerRepo, settingsRepo, importer),
		Settings:    NewSettingsService(settingsRepo),
	}
}
