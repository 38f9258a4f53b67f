package admin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/currency_admin/internal/apperrors"
	"github.com/SscSPs/currency_admin/internal/core/domain"
)

// Lifecycle turns currency intents into a store call, a notification and,
// on success, a reload of the collection.
type Lifecycle struct {
	store    CurrencyStore
	notifier Notifier
	reloader Reloader
	opts     options

	mu      sync.Mutex
	pending *int64
}

// NewLifecycle wires the operations to the store and the collection to reload.
func NewLifecycle(store CurrencyStore, notifier Notifier, reloader Reloader, opts ...Option) *Lifecycle {
	return &Lifecycle{
		store:    store,
		notifier: notifier,
		reloader: reloader,
		opts:     applyOptions(opts),
	}
}

// Create adds a currency. A rejection shows the store's message when it sent one.
func (l *Lifecycle) Create(ctx context.Context, draft domain.CurrencyDraft) error {
	created, err := bounded(ctx, l.opts.timeout, func(ctx context.Context) (*domain.Currency, error) {
		return l.store.CreateCurrency(ctx, draft)
	})
	if err != nil {
		l.fail(ctx, "create currency", apperrors.UserMessage(err, MsgSaveFailed), err, slog.String("code", draft.Code))
		return fmt.Errorf("create currency %q: %w", draft.Code, err)
	}

	attrs := []any{slog.String("code", draft.Code)}
	if created != nil {
		attrs = append(attrs, slog.Int64("currency_id", created.ID))
	}
	l.opts.logger.InfoContext(ctx, "currency created", attrs...)
	l.notifier.Success(ctx, MsgCreated)
	l.reload(ctx)
	return nil
}

// Update replaces the editable fields of currency id.
func (l *Lifecycle) Update(ctx context.Context, id int64, draft domain.CurrencyDraft) error {
	_, err := bounded(ctx, l.opts.timeout, func(ctx context.Context) (*domain.Currency, error) {
		return l.store.UpdateCurrency(ctx, id, draft)
	})
	if err != nil {
		l.fail(ctx, "update currency", apperrors.UserMessage(err, MsgSaveFailed), err, slog.Int64("currency_id", id))
		return fmt.Errorf("update currency %d: %w", id, err)
	}

	l.opts.logger.InfoContext(ctx, "currency updated", slog.Int64("currency_id", id))
	l.notifier.Success(ctx, MsgUpdated)
	l.reload(ctx)
	return nil
}

// ToggleActive flips isActive. current is the state the caller last saw;
// the notification describes the new state.
func (l *Lifecycle) ToggleActive(ctx context.Context, id int64, current bool) error {
	next := !current
	_, err := bounded(ctx, l.opts.timeout, func(ctx context.Context) (*domain.Currency, error) {
		return l.store.PatchCurrency(ctx, id, domain.CurrencyPatch{IsActive: &next})
	})
	if err != nil {
		l.fail(ctx, "toggle currency status", MsgStatusFailed, err, slog.Int64("currency_id", id))
		return fmt.Errorf("set currency %d active=%t: %w", id, next, err)
	}

	l.opts.logger.InfoContext(ctx, "currency status changed", slog.Int64("currency_id", id), slog.Bool("is_active", next))
	if next {
		l.notifier.Success(ctx, MsgActivated)
	} else {
		l.notifier.Success(ctx, MsgDeactivated)
	}
	l.reload(ctx)
	return nil
}

// RequestDelete marks id as awaiting confirmation. Nothing is sent yet.
// A newer request replaces an older one.
func (l *Lifecycle) RequestDelete(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = &id
}

// PendingDeletion returns the id awaiting confirmation, if any.
func (l *Lifecycle) PendingDeletion() (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil {
		return 0, false
	}
	return *l.pending, true
}

// CancelDelete drops the pending deletion. It is not an error to cancel
// when nothing is pending.
func (l *Lifecycle) CancelDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = nil
}

// ConfirmDelete deletes the pending currency.
func (l *Lifecycle) ConfirmDelete(ctx context.Context) error {
	l.mu.Lock()
	if l.pending == nil {
		l.mu.Unlock()
		return ErrNoPendingDeletion
	}
	id := *l.pending
	l.pending = nil
	l.mu.Unlock()

	err := boundedErr(ctx, l.opts.timeout, func(ctx context.Context) error {
		return l.store.DeleteCurrency(ctx, id)
	})
	if err != nil {
		l.fail(ctx, "delete currency", MsgDeleteFailed, err, slog.Int64("currency_id", id))
		return fmt.Errorf("delete currency %d: %w", id, err)
	}

	l.opts.logger.InfoContext(ctx, "currency deleted", slog.Int64("currency_id", id))
	l.notifier.Success(ctx, MsgDeleted)
	l.reload(ctx)
	return nil
}

func (l *Lifecycle) fail(ctx context.Context, op, message string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", err.Error()))
	l.opts.logger.ErrorContext(ctx, "failed to "+op, attrs...)
	l.notifier.Failure(ctx, message)
}

// reload refreshes the collection after a successful mutation. A failed
// reload has already been reported by the collection itself.
func (l *Lifecycle) reload(ctx context.Context) {
	if l.reloader == nil {
		return
	}
	if err := l.reloader.Load(ctx); err != nil {
		l.opts.logger.WarnContext(ctx, "reload after mutation failed", slog.String("error", err.Error()))
	}
}
