package repositories

import (
	"context"

	"github.com/SscSPs/currency_admin/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its id.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// FindBaseCurrency retrieves the base currency, or ErrNotFound when none is set.
	FindBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves currencies ordered by code, plus the total
	// matching the filter. A zero page returns every row.
	ListCurrencies(ctx context.Context, filter domain.CurrencyFilter, page domain.Page) ([]domain.Currency, int, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency inserts a new currency and sets its ID.
	SaveCurrency(ctx context.Context, currency *domain.Currency) error

	// UpdateCurrency overwrites every editable column of an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency removes a currency.
	DeleteCurrency(ctx context.Context, id int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
