package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSourceCurrencyMaster tags observations snapshotted from currency records.
const RateSourceCurrencyMaster = "currency-master"

// ExchangeRate is a historical rate observation between two currencies.
// It is read-only for the admin console.
type ExchangeRate struct {
	ID           int64           `json:"id"`
	FromCurrency int64           `json:"fromCurrency"`
	ToCurrency   int64           `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	Date         time.Time       `json:"date"`
	Source       string          `json:"source"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ExchangeRateFilter narrows an exchange rate listing. Nil fields are ignored.
type ExchangeRateFilter struct {
	StartDate    *time.Time
	EndDate      *time.Time
	FromCurrency *int64
	ToCurrency   *int64
}

// RateRefreshResult describes a completed bulk refresh.
type RateRefreshResult struct {
	Updated   int       `json:"updated"`
	Timestamp time.Time `json:"timestamp"`
}
