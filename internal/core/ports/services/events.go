package services

import (
	"context"

	"github.com/SscSPs/currency_admin/internal/core/domain"
)

// EventPublisher announces committed currency changes to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.CurrencyEvent) error
	Close() error
}
