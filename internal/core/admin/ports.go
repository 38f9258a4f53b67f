// Package admin holds the currency administration core: the draft
// controller, the collection store, lifecycle operations and the rate
// refresh coordinator. It talks to the remote currency store and to a
// notifier only through the interfaces below.
package admin

import (
	"context"

	"github.com/SscSPs/currency_admin/internal/core/domain"
)

// CurrencyStore is the remote source of truth for currencies and rates.
type CurrencyStore interface {
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
	CreateCurrency(ctx context.Context, draft domain.CurrencyDraft) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, id int64, draft domain.CurrencyDraft) (*domain.Currency, error)
	PatchCurrency(ctx context.Context, id int64, patch domain.CurrencyPatch) (*domain.Currency, error)
	DeleteCurrency(ctx context.Context, id int64) error
	RefreshRates(ctx context.Context) error
}

// Notifier shows fire-and-forget messages to the operator.
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string)
	Warning(ctx context.Context, message string)
}

// Reloader refetches the collection after a mutation.
type Reloader interface {
	Load(ctx context.Context) error
}
