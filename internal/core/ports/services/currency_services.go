package services

import (
	"context"

	"github.com/SscSPs/currency_admin/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency.
	GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// ListCurrencies retrieves currencies and the total count for pagination.
	ListCurrencies(ctx context.Context, filter domain.CurrencyFilter, page domain.Page) ([]domain.Currency, int, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, draft domain.CurrencyDraft, userID string) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, id int64, draft domain.CurrencyDraft, userID string) (*domain.Currency, error)
	PatchCurrency(ctx context.Context, id int64, patch domain.CurrencyPatch, userID string) (*domain.Currency, error)
	DeleteCurrency(ctx context.Context, id int64, userID string) error
}

// RateRefresherSvc runs the bulk exchange rate refresh.
type RateRefresherSvc interface {
	RefreshRates(ctx context.Context, userID string) (*domain.RateRefreshResult, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
	RateRefresherSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// ListExchangeRates retrieves the rate history and the total count for pagination.
	ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter, page domain.Page) ([]domain.ExchangeRate, int, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
}
