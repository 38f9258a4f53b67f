package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_admin/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// ListExchangeRates retrieves observations newest first, plus the total
	// matching the filter. A zero page returns every row.
	ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter, page domain.Page) ([]domain.ExchangeRate, int, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// RecordRatesToCurrency snapshots the current exchangeRateToUsd of every
	// active currency other than target as an observation into target on
	// date, replacing an existing one for the same pair and date. It runs in
	// one transaction and returns the number of observations written.
	RecordRatesToCurrency(ctx context.Context, target int64, date time.Time, source string) (int, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
