package mapping

import (
	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/SscSPs/currency_admin/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		ID:                d.ID,
		Code:              d.Code,
		Name:              d.Name,
		Symbol:            d.Symbol,
		ExchangeRateToUSD: d.ExchangeRateToUSD,
		IsBaseCurrency:    d.IsBaseCurrency,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:                m.ID,
		Code:              m.Code,
		Name:              m.Name,
		Symbol:            m.Symbol,
		ExchangeRateToUSD: m.ExchangeRateToUSD,
		IsBaseCurrency:    m.IsBaseCurrency,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
