package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// RefreshStatus is the observable state of the rate refresh guard.
// Stuck is set when the last attempt hit the deadline and cleared by the
// next attempt that gets an answer.
type RefreshStatus struct {
	Refreshing  bool
	Since       time.Time
	Stuck       bool
	LastTimeout time.Time
}

// RateRefreshCoordinator lets at most one bulk rate refresh run at a time.
type RateRefreshCoordinator struct {
	store    CurrencyStore
	notifier Notifier
	reloader Reloader
	opts     options

	mu     sync.Mutex
	status RefreshStatus
}

// NewRateRefreshCoordinator creates an idle coordinator.
func NewRateRefreshCoordinator(store CurrencyStore, notifier Notifier, reloader Reloader, opts ...Option) *RateRefreshCoordinator {
	return &RateRefreshCoordinator{
		store:    store,
		notifier: notifier,
		reloader: reloader,
		opts:     applyOptions(opts),
	}
}

// Trigger asks the store to refresh all rates. While a refresh is in flight
// further triggers return ErrRefreshInProgress without calling the store.
func (c *RateRefreshCoordinator) Trigger(ctx context.Context) error {
	c.mu.Lock()
	if c.status.Refreshing {
		since := c.status.Since
		c.mu.Unlock()
		c.opts.logger.WarnContext(ctx, "rate refresh already running", slog.Time("since", since))
		return ErrRefreshInProgress
	}
	c.status.Refreshing = true
	c.status.Since = c.opts.now()
	c.mu.Unlock()

	err := boundedErr(ctx, c.opts.timeout, c.store.RefreshRates)

	c.mu.Lock()
	c.status.Refreshing = false
	c.status.Since = time.Time{}
	if errors.Is(err, ErrOperationTimedOut) {
		c.status.Stuck = true
		c.status.LastTimeout = c.opts.now()
	} else {
		c.status.Stuck = false
	}
	c.mu.Unlock()

	if err != nil {
		if errors.Is(err, ErrOperationTimedOut) {
			c.opts.logger.WarnContext(ctx, "rate refresh timed out", slog.Duration("timeout", c.opts.timeout))
		} else {
			c.opts.logger.ErrorContext(ctx, "rate refresh failed", slog.String("error", err.Error()))
		}
		c.notifier.Failure(ctx, MsgRatesFailed)
		return fmt.Errorf("refresh exchange rates: %w", err)
	}

	c.opts.logger.InfoContext(ctx, "exchange rates refreshed")
	c.notifier.Success(ctx, MsgRatesUpdated)
	if c.reloader != nil {
		if err := c.reloader.Load(ctx); err != nil {
			c.opts.logger.WarnContext(ctx, "reload after rate refresh failed", slog.String("error", err.Error()))
		}
	}
	return nil
}

// Status returns the current guard state.
func (c *RateRefreshCoordinator) Status() RefreshStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
