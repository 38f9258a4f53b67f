package domain

import "github.com/shopspring/decimal"

// CurrencyDraft is the editable part of a Currency while it is being created
// or edited. ExchangeRateToUSD is invalid when the operator entered nothing
// numeric.
type CurrencyDraft struct {
	Code              string              `json:"code" validate:"required,len=3"`
	Name              string              `json:"name" validate:"required"`
	Symbol            string              `json:"symbol" validate:"required"`
	ExchangeRateToUSD decimal.NullDecimal `json:"exchangeRateToUsd" validate:"required,gte=0.000001"`
	IsBaseCurrency    bool                `json:"isBaseCurrency"`
	IsActive          bool                `json:"isActive"`
}

// NewCurrencyDraft returns the defaults used when adding a currency.
func NewCurrencyDraft() CurrencyDraft {
	return CurrencyDraft{
		ExchangeRateToUSD: decimal.NewNullDecimal(decimal.NewFromInt(1)),
		IsActive:          true,
	}
}

// DraftFromCurrency copies the editable fields of c.
func DraftFromCurrency(c Currency) CurrencyDraft {
	return CurrencyDraft{
		Code:              c.Code,
		Name:              c.Name,
		Symbol:            c.Symbol,
		ExchangeRateToUSD: decimal.NewNullDecimal(c.ExchangeRateToUSD),
		IsBaseCurrency:    c.IsBaseCurrency,
		IsActive:          c.IsActive,
	}
}

// CurrencyPatch is a partial update. Nil fields are left unchanged.
type CurrencyPatch struct {
	Code              *string          `json:"code,omitempty"`
	Name              *string          `json:"name,omitempty"`
	Symbol            *string          `json:"symbol,omitempty"`
	ExchangeRateToUSD *decimal.Decimal `json:"exchangeRateToUsd,omitempty"`
	IsBaseCurrency    *bool            `json:"isBaseCurrency,omitempty"`
	IsActive          *bool            `json:"isActive,omitempty"`
}
