package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyRequest is the body of POST /currencies and PUT /currencies/{id}.
// IsActive defaults to true when omitted.
type CurrencyRequest struct {
	Code              string           `json:"code" binding:"required,len=3" example:"EUR"`
	Name              string           `json:"name" binding:"required,max=100" example:"Euro"`
	Symbol            string           `json:"symbol" binding:"required,max=10" example:"€"`
	ExchangeRateToUSD *decimal.Decimal `json:"exchangeRateToUsd" binding:"required" swaggertype:"string" example:"0.92"`
	IsBaseCurrency    bool             `json:"isBaseCurrency"`
	IsActive          *bool            `json:"isActive"`
}

// ToDraft converts the request into a normalised draft.
func (r CurrencyRequest) ToDraft() domain.CurrencyDraft {
	draft := domain.CurrencyDraft{
		Code:           strings.ToUpper(strings.TrimSpace(r.Code)),
		Name:           strings.TrimSpace(r.Name),
		Symbol:         strings.TrimSpace(r.Symbol),
		IsBaseCurrency: r.IsBaseCurrency,
		IsActive:       true,
	}
	if r.ExchangeRateToUSD != nil {
		draft.ExchangeRateToUSD = decimal.NewNullDecimal(*r.ExchangeRateToUSD)
	}
	if r.IsActive != nil {
		draft.IsActive = *r.IsActive
	}
	return draft
}

// CurrencyRequestFromDraft builds the request body the admin console sends.
func CurrencyRequestFromDraft(d domain.CurrencyDraft) CurrencyRequest {
	isActive := d.IsActive
	req := CurrencyRequest{
		Code:           d.Code,
		Name:           d.Name,
		Symbol:         d.Symbol,
		IsBaseCurrency: d.IsBaseCurrency,
		IsActive:       &isActive,
	}
	if d.ExchangeRateToUSD.Valid {
		rate := d.ExchangeRateToUSD.Decimal
		req.ExchangeRateToUSD = &rate
	}
	return req
}

// PatchCurrencyRequest is the body of PATCH /currencies/{id}. Omitted fields are left unchanged.
type PatchCurrencyRequest struct {
	Code              *string          `json:"code,omitempty" binding:"omitempty,len=3"`
	Name              *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Symbol            *string          `json:"symbol,omitempty" binding:"omitempty,min=1,max=10"`
	ExchangeRateToUSD *decimal.Decimal `json:"exchangeRateToUsd,omitempty" swaggertype:"string"`
	IsBaseCurrency    *bool            `json:"isBaseCurrency,omitempty"`
	IsActive          *bool            `json:"isActive,omitempty" example:"false"`
}

// ToPatch converts the request into a domain patch.
func (r PatchCurrencyRequest) ToPatch() domain.CurrencyPatch {
	patch := domain.CurrencyPatch{
		Name:              r.Name,
		Symbol:            r.Symbol,
		ExchangeRateToUSD: r.ExchangeRateToUSD,
		IsBaseCurrency:    r.IsBaseCurrency,
		IsActive:          r.IsActive,
	}
	if r.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*r.Code))
		patch.Code = &code
	}
	return patch
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID                int64           `json:"id" example:"2"`
	Code              string          `json:"code" example:"EUR"`
	Name              string          `json:"name" example:"Euro"`
	Symbol            string          `json:"symbol" example:"€"`
	ExchangeRateToUSD decimal.Decimal `json:"exchangeRateToUsd" swaggertype:"string" example:"0.92"`
	IsBaseCurrency    bool            `json:"isBaseCurrency"`
	IsActive          bool            `json:"isActive"`
	LastUpdated       time.Time       `json:"lastUpdated"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
	LastUpdatedBy     string          `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:                curr.ID,
		Code:              curr.Code,
		Name:              curr.Name,
		Symbol:            curr.Symbol,
		ExchangeRateToUSD: curr.ExchangeRateToUSD,
		IsBaseCurrency:    curr.IsBaseCurrency,
		IsActive:          curr.IsActive,
		LastUpdated:       curr.LastUpdatedAt,
		CreatedAt:         curr.CreatedAt,
		CreatedBy:         curr.CreatedBy,
		LastUpdatedBy:     curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// ToDomain converts the response back into a domain.Currency.
func (r CurrencyResponse) ToDomain() domain.Currency {
	return domain.Currency{
		ID:                r.ID,
		Code:              r.Code,
		Name:              r.Name,
		Symbol:            r.Symbol,
		ExchangeRateToUSD: r.ExchangeRateToUSD,
		IsBaseCurrency:    r.IsBaseCurrency,
		IsActive:          r.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     r.CreatedAt,
			CreatedBy:     r.CreatedBy,
			LastUpdatedAt: r.LastUpdated,
			LastUpdatedBy: r.LastUpdatedBy,
		},
	}
}

// RefreshRatesResponse is returned by POST /currencies/update-rates.
type RefreshRatesResponse struct {
	Message   string    `json:"message" example:"Exchange rates updated successfully"`
	Timestamp time.Time `json:"timestamp"`
	Updated   int       `json:"updated" example:"12"`
}
