package domain

import "github.com/shopspring/decimal"

// USDCode and ZWLCode are the currencies the dashboard reports rates for.
const (
	USDCode = "USD"
	ZWLCode = "ZWL"
)

// Currency is a currency master record. ID is assigned by the store.
type Currency struct {
	ID                int64           `json:"id"`
	Code              string          `json:"code"`   // e.g. "USD"
	Name              string          `json:"name"`   // e.g. "US Dollar"
	Symbol            string          `json:"symbol"` // e.g. "$"
	ExchangeRateToUSD decimal.Decimal `json:"exchangeRateToUsd"`
	IsBaseCurrency    bool            `json:"isBaseCurrency"`
	IsActive          bool            `json:"isActive"`
	AuditFields
}

// CurrencyFilter narrows a currency listing.
type CurrencyFilter struct {
	ActiveOnly bool
}
