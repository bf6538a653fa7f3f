package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/wasul/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newPricing,
	NewPartnerUseCase,
	NewAddressUseCase,
	NewDeliveryUseCase,
	NewInvoiceUseCase,
	NewStatsUseCase,
)

func newPricing(cfg *config.Config) Pricing {
	return Pricing{Rate: cfg.LookupRate, Currency: cfg.Currency}
}
