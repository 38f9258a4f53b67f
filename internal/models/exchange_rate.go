package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies for a specific date.
// (from_currency_id, to_currency_id, rate_date) is unique.
type ExchangeRate struct {
	ID             int64           `db:"id"`
	FromCurrencyID int64           `db:"from_currency_id"`
	ToCurrencyID   int64           `db:"to_currency_id"`
	Rate           decimal.Decimal `db:"rate"`
	RateDate       time.Time       `db:"rate_date"`
	Source         string          `db:"source"`
	CreatedAt      time.Time       `db:"created_at"`
}
