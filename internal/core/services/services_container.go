package services

import (
	portsrepo "github.com/SscSPs/currency_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_admin/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(
			repos.CurrencyRepo,
			repos.ExchangeRateRepo,
			WithEventPublisher(publisher),
		),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo),
	}
}
