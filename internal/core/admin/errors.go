package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/currency_admin/internal/apperrors"
)

var (
	// ErrDraftClosed is returned when a draft action runs with no form open.
	ErrDraftClosed = errors.New("no currency draft is open")
	// ErrSubmitInProgress is returned for a second submit while one is in flight.
	ErrSubmitInProgress = errors.New("currency draft is already being submitted")
	// ErrRefreshInProgress is returned when a rate refresh is already running.
	ErrRefreshInProgress = errors.New("exchange rate refresh already in progress")
	// ErrNoPendingDeletion is returned by ConfirmDelete without a prior RequestDelete.
	ErrNoPendingDeletion = errors.New("no currency deletion awaiting confirmation")
	// ErrOperationTimedOut is returned when the store did not answer in time.
	ErrOperationTimedOut = errors.New("remote operation timed out")
)

// Operator-facing notification texts.
const (
	MsgCreated      = "Currency created successfully!"
	MsgUpdated      = "Currency updated successfully!"
	MsgDeleted      = "Currency deleted successfully!"
	MsgActivated    = "Currency activated successfully!"
	MsgDeactivated  = "Currency deactivated successfully!"
	MsgRatesUpdated = "Exchange rates updated successfully!"

	MsgSaveFailed   = "Failed to save currency"
	MsgDeleteFailed = "Failed to delete currency"
	MsgStatusFailed = "Failed to update currency status"
	MsgRatesFailed  = "Failed to update exchange rates"
	MsgLoadFailed   = "Failed to load currency data"
)

// ValidationError reports a draft rejected before reaching the store.
type ValidationError struct {
	Violations Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for field := range e.Violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + e.Violations[field]
	}
	return "currency draft is invalid: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

// bounded runs fn under timeout and gives up waiting once the deadline
// passes, even if fn ignores its context.
func bounded[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return fn(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		val, err := fn(callCtx)
		done <- result{val: val, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && errors.Is(r.err, context.DeadlineExceeded) && ctx.Err() == nil {
			return r.val, fmt.Errorf("%w: %w", ErrOperationTimedOut, r.err)
		}
		return r.val, r.err
	case <-callCtx.Done():
		var zero T
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		return zero, fmt.Errorf("%w after %s", ErrOperationTimedOut, timeout)
	}
}

// boundedErr is bounded for calls that only return an error.
func boundedErr(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	_, err := bounded(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
