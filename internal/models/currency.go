package models

import "github.com/shopspring/decimal"

// Currency is a row of the currencies table.
type Currency struct {
	ID                int64           `db:"id"`
	Code              string          `db:"code"` // unique, upper-case
	Name              string          `db:"name"`
	Symbol            string          `db:"symbol"`
	ExchangeRateToUSD decimal.Decimal `db:"exchange_rate_to_usd"`
	IsBaseCurrency    bool            `db:"is_base_currency"` // at most one row, see currencies_single_base
	IsActive          bool            `db:"is_active"`
	AuditFields
}
