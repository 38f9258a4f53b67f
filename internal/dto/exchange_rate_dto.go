package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of rate dates and date filters.
const DateLayout = "2006-01-02"

// ListExchangeRatesQuery holds the query parameters of GET /exchange-rates.
type ListExchangeRatesQuery struct {
	StartDate    string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate      string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	FromCurrency *int64 `form:"from_currency" binding:"omitempty,min=1"`
	ToCurrency   *int64 `form:"to_currency" binding:"omitempty,min=1"`
	PageQuery
}

// ToFilter parses the query into a domain filter. Dates are already
// validated by binding.
func (q ListExchangeRatesQuery) ToFilter() (domain.ExchangeRateFilter, error) {
	filter := domain.ExchangeRateFilter{
		FromCurrency: q.FromCurrency,
		ToCurrency:   q.ToCurrency,
	}
	if q.StartDate != "" {
		t, err := time.Parse(DateLayout, q.StartDate)
		if err != nil {
			return filter, fmt.Errorf("invalid start_date: %w", err)
		}
		filter.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse(DateLayout, q.EndDate)
		if err != nil {
			return filter, fmt.Errorf("invalid end_date: %w", err)
		}
		filter.EndDate = &t
	}
	return filter, nil
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID           int64           `json:"id" example:"41"`
	FromCurrency int64           `json:"fromCurrency" example:"2"`
	ToCurrency   int64           `json:"toCurrency" example:"1"`
	Rate         decimal.Decimal `json:"rate" swaggertype:"string" example:"0.92"`
	Date         string          `json:"date" example:"2025-03-01"`
	Source       string          `json:"source" example:"currency-master"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:           rate.ID,
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		Date:         rate.Date.Format(DateLayout),
		Source:       rate.Source,
		CreatedAt:    rate.CreatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToDomain converts the response back into a domain.ExchangeRate.
func (r ExchangeRateResponse) ToDomain() (domain.ExchangeRate, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("exchange rate %d: invalid date %q: %w", r.ID, r.Date, err)
	}
	return domain.ExchangeRate{
		ID:           r.ID,
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		Rate:         r.Rate,
		Date:         date,
		Source:       r.Source,
		CreatedAt:    r.CreatedAt,
	}, nil
}
