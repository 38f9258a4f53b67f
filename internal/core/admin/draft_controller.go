package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DraftMode is what the draft form is currently doing.
type DraftMode int

const (
	ModeClosed DraftMode = iota
	ModeCreating
	ModeEditing
)

func (m DraftMode) String() string {
	switch m {
	case ModeCreating:
		return "creating"
	case ModeEditing:
		return "editing"
	default:
		return "closed"
	}
}

// DraftState is a copy of the controller state.
// CurrencyID is only meaningful in ModeEditing.
type DraftState struct {
	Mode       DraftMode
	CurrencyID int64
	Draft      domain.CurrencyDraft
	Errors     Violations
	Submitting bool
}

// DraftSaver persists a submitted draft and reports the outcome to the
// operator. Lifecycle implements it.
type DraftSaver interface {
	Create(ctx context.Context, draft domain.CurrencyDraft) error
	Update(ctx context.Context, id int64, draft domain.CurrencyDraft) error
}

// DraftController owns the single create/edit form.
type DraftController struct {
	saver DraftSaver
	opts  options

	mu         sync.Mutex
	mode       DraftMode
	currencyID int64
	draft      domain.CurrencyDraft
	errors     Violations
	submitting bool
	// generation changes whenever the form is opened or closed, so a submit
	// that finishes after Cancel cannot touch the new state.
	generation uint64
}

// NewDraftController returns a closed controller.
func NewDraftController(saver DraftSaver, opts ...Option) *DraftController {
	return &DraftController{
		saver: saver,
		opts:  applyOptions(opts),
	}
}

// OpenForCreate opens an empty form with the default values.
func (c *DraftController) OpenForCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(ModeCreating, 0, domain.NewCurrencyDraft())
}

// OpenForEdit opens the form pre-filled from currency.
func (c *DraftController) OpenForEdit(currency domain.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(ModeEditing, currency.ID, domain.DraftFromCurrency(currency))
}

// Cancel closes the form and drops the draft, even mid-submit.
func (c *DraftController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(ModeClosed, 0, domain.CurrencyDraft{})
}

func (c *DraftController) reset(mode DraftMode, id int64, draft domain.CurrencyDraft) {
	c.generation++
	c.mode = mode
	c.currencyID = id
	c.draft = draft
	c.errors = Violations{}
	c.submitting = false
}

// UpdateField sets one draft field from its text form. Nothing is validated
// until Submit. A rate that is not a number is kept as missing.
func (c *DraftController) UpdateField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeClosed {
		return ErrDraftClosed
	}

	switch field {
	case FieldCode:
		c.draft.Code = value
	case FieldName:
		c.draft.Name = value
	case FieldSymbol:
		c.draft.Symbol = value
	case FieldExchangeRateToUSD:
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			c.draft.ExchangeRateToUSD = decimal.NullDecimal{}
		} else {
			c.draft.ExchangeRateToUSD = decimal.NewNullDecimal(rate)
		}
	case FieldIsBaseCurrency, FieldIsActive:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("field %s: %q is not a boolean", field, value)
		}
		if field == FieldIsBaseCurrency {
			c.draft.IsBaseCurrency = b
		} else {
			c.draft.IsActive = b
		}
	default:
		return fmt.Errorf("unknown currency field %q", field)
	}
	return nil
}

// State returns a copy of the controller state.
func (c *DraftController) State() DraftState {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := make(Violations, len(c.errors))
	for k, v := range c.errors {
		errs[k] = v
	}
	return DraftState{
		Mode:       c.mode,
		CurrencyID: c.currencyID,
		Draft:      c.draft,
		Errors:     errs,
		Submitting: c.submitting,
	}
}

// Submit validates the draft and hands it to the saver. An invalid draft
// returns a *ValidationError and is never sent. On success the form closes;
// on failure it stays open with the draft intact so the operator can retry.
func (c *DraftController) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.mode == ModeClosed:
		c.mu.Unlock()
		return ErrDraftClosed
	case c.submitting:
		c.mu.Unlock()
		return ErrSubmitInProgress
	}

	violations := Validate(c.draft)
	c.errors = violations
	if !violations.Valid() {
		c.mu.Unlock()
		c.opts.logger.DebugContext(ctx, "currency draft rejected", slog.Any("violations", map[string]string(violations)))
		return &ValidationError{Violations: violations}
	}

	c.submitting = true
	gen := c.generation
	mode, id, draft := c.mode, c.currencyID, c.draft
	c.mu.Unlock()

	var err error
	if mode == ModeEditing {
		err = c.saver.Update(ctx, id, draft)
	} else {
		err = c.saver.Create(ctx, draft)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		c.opts.logger.DebugContext(ctx, "discarding result of cancelled submit", slog.String("mode", mode.String()))
		return err
	}
	if err != nil {
		c.submitting = false
		if errors.Is(err, ErrOperationTimedOut) {
			c.opts.logger.WarnContext(ctx, "currency submit timed out", slog.String("mode", mode.String()))
		}
		return err
	}
	c.reset(ModeClosed, 0, domain.CurrencyDraft{})
	return nil
}
