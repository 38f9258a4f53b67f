package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/currency_admin/internal/apperrors"
	"github.com/SscSPs/currency_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_admin/internal/core/ports/services"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Messages returned to API clients. Admin consoles show some of them verbatim.
const (
	msgCodeInvalid         = "Currency code must be 3 uppercase letters"
	msgNameRequired        = "Currency name is required"
	msgSymbolRequired      = "Currency symbol is required"
	msgRateInvalid         = "Exchange rate must be positive"
	msgDuplicateCode       = "currency with this code already exists."
	msgSingleBase          = "Only one base currency is allowed"
	msgDeleteBase          = "Cannot delete the base currency"
	msgCurrencyNotFound    = "Currency not found"
	msgUSDRecordNotPresent = "No USD currency record found"
)

// CurrencyServiceOption is a function that configures a currencyService
type CurrencyServiceOption func(*currencyService)

// WithEventPublisher announces committed changes through publisher.
func WithEventPublisher(publisher portssvc.EventPublisher) CurrencyServiceOption {
	return func(s *currencyService) {
		s.Publisher = publisher
	}
}

// WithCurrencyClock replaces time.Now for audit stamps and rate dates.
func WithCurrencyClock(now func() time.Time) CurrencyServiceOption {
	return func(s *currencyService) {
		if now != nil {
			s.now = now
		}
	}
}

// currencyService implements the currency-related service interfaces
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	now          func() time.Time
}

// NewCurrencyService creates a new currency service with the given options
func NewCurrencyService(
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	options ...CurrencyServiceOption,
) portssvc.CurrencySvcFacade {
	svc := &currencyService{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgCurrencyNotFound)
		}
		s.LogError(ctx, err, "Failed to get currency", slog.Int64("currency_id", id))
		return nil, fmt.Errorf("failed to get currency %d: %w", id, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter, page domain.Page) ([]domain.Currency, int, error) {
	currencies, total, err := s.currencyRepo.ListCurrencies(ctx, filter, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, 0, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, total, nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, draft domain.CurrencyDraft, userID string) (*domain.Currency, error) {
	draft = normalizeDraft(draft)
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, draft.Code, 0); err != nil {
		return nil, err
	}
	if draft.IsBaseCurrency {
		if err := s.ensureNoOtherBase(ctx, 0); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	currency := domain.Currency{
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	applyDraft(&currency, draft)

	if err := s.currencyRepo.SaveCurrency(ctx, &currency); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError(msgDuplicateCode)
		}
		s.LogError(ctx, err, "Failed to save currency", slog.String("code", draft.Code))
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.Int64("currency_id", currency.ID), slog.String("code", currency.Code))
	s.Publish(ctx, domain.CurrencyEvent{
		Type:       domain.EventCurrencyCreated,
		CurrencyID: currency.ID,
		Code:       currency.Code,
		OccurredAt: now,
	})
	return &currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, id int64, draft domain.CurrencyDraft, userID string) (*domain.Currency, error) {
	existing, err := s.GetCurrencyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, existing, normalizeDraft(draft), userID, domain.EventCurrencyUpdated)
}

// PatchCurrency applies the set fields of patch on top of the stored record.
// A patch touching only isActive is announced as an activation change.
func (s *currencyService) PatchCurrency(ctx context.Context, id int64, patch domain.CurrencyPatch, userID string) (*domain.Currency, error) {
	existing, err := s.GetCurrencyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := domain.DraftFromCurrency(*existing)
	if patch.Code != nil {
		draft.Code = *patch.Code
	}
	if patch.Name != nil {
		draft.Name = *patch.Name
	}
	if patch.Symbol != nil {
		draft.Symbol = *patch.Symbol
	}
	if patch.ExchangeRateToUSD != nil {
		draft.ExchangeRateToUSD.Decimal = *patch.ExchangeRateToUSD
		draft.ExchangeRateToUSD.Valid = true
	}
	if patch.IsBaseCurrency != nil {
		draft.IsBaseCurrency = *patch.IsBaseCurrency
	}

	eventType := domain.EventCurrencyUpdated
	if patch.IsActive != nil {
		draft.IsActive = *patch.IsActive
		if onlyActiveChanged(patch) {
			eventType = domain.EventCurrencyDeactivated
			if *patch.IsActive {
				eventType = domain.EventCurrencyActivated
			}
		}
	}

	return s.save(ctx, existing, normalizeDraft(draft), userID, eventType)
}

func (s *currencyService) DeleteCurrency(ctx context.Context, id int64, userID string) error {
	existing, err := s.GetCurrencyByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsBaseCurrency {
		return apperrors.NewValidationError(msgDeleteBase)
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(msgCurrencyNotFound)
		}
		s.LogError(ctx, err, "Failed to delete currency", slog.Int64("currency_id", id))
		return fmt.Errorf("failed to delete currency %d: %w", id, err)
	}

	s.LogInfo(ctx, "Currency deleted", slog.Int64("currency_id", id), slog.String("code", existing.Code), slog.String("user_id", userID))
	s.Publish(ctx, domain.CurrencyEvent{
		Type:       domain.EventCurrencyDeleted,
		CurrencyID: id,
		Code:       existing.Code,
		OccurredAt: s.now().UTC(),
	})
	return nil
}

// RefreshRates records today's rate of every active currency into USD.
func (s *currencyService) RefreshRates(ctx context.Context, userID string) (*domain.RateRefreshResult, error) {
	usd, err := s.currencyRepo.FindCurrencyByCode(ctx, domain.USDCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(msgUSDRecordNotPresent)
		}
		s.LogError(ctx, err, "Failed to look up USD for rate refresh")
		return nil, fmt.Errorf("failed to refresh rates: %w", err)
	}

	now := s.now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	updated, err := s.rateRepo.RecordRatesToCurrency(ctx, usd.ID, date, domain.RateSourceCurrencyMaster)
	if err != nil {
		s.LogError(ctx, err, "Failed to record exchange rates")
		return nil, fmt.Errorf("failed to refresh rates: %w", err)
	}

	s.LogInfo(ctx, "Exchange rates refreshed", slog.Int("updated", updated), slog.String("user_id", userID))
	s.Publish(ctx, domain.CurrencyEvent{
		Type:       domain.EventRatesRefreshed,
		Updated:    updated,
		OccurredAt: now,
	})
	return &domain.RateRefreshResult{Updated: updated, Timestamp: now}, nil
}

func (s *currencyService) save(ctx context.Context, existing *domain.Currency, draft domain.CurrencyDraft, userID string, eventType domain.CurrencyEventType) (*domain.Currency, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if draft.Code != existing.Code {
		if err := s.ensureCodeFree(ctx, draft.Code, existing.ID); err != nil {
			return nil, err
		}
	}
	if draft.IsBaseCurrency && !existing.IsBaseCurrency {
		if err := s.ensureNoOtherBase(ctx, existing.ID); err != nil {
			return nil, err
		}
	}

	updated := *existing
	applyDraft(&updated, draft)
	updated.LastUpdatedAt = s.now().UTC()
	updated.LastUpdatedBy = userID

	if err := s.currencyRepo.UpdateCurrency(ctx, updated); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewDuplicateError(msgDuplicateCode)
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError(msgCurrencyNotFound)
		}
		s.LogError(ctx, err, "Failed to update currency", slog.Int64("currency_id", existing.ID))
		return nil, fmt.Errorf("failed to update currency %d: %w", existing.ID, err)
	}

	s.LogInfo(ctx, "Currency updated", slog.Int64("currency_id", updated.ID), slog.String("event", string(eventType)))
	s.Publish(ctx, domain.CurrencyEvent{
		Type:       eventType,
		CurrencyID: updated.ID,
		Code:       updated.Code,
		OccurredAt: updated.LastUpdatedAt,
	})
	return &updated, nil
}

func (s *currencyService) ensureCodeFree(ctx context.Context, code string, selfID int64) error {
	found, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check currency code %s: %w", code, err)
	case found.ID != selfID:
		return apperrors.NewDuplicateError(msgDuplicateCode)
	}
	return nil
}

func (s *currencyService) ensureNoOtherBase(ctx context.Context, selfID int64) error {
	base, err := s.currencyRepo.FindBaseCurrency(ctx)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check base currency: %w", err)
	case base.ID != selfID:
		return apperrors.NewValidationError(msgSingleBase)
	}
	return nil
}

func normalizeDraft(draft domain.CurrencyDraft) domain.CurrencyDraft {
	draft.Code = strings.ToUpper(strings.TrimSpace(draft.Code))
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Symbol = strings.TrimSpace(draft.Symbol)
	return draft
}

func validateDraft(draft domain.CurrencyDraft) error {
	switch {
	case !currencyCodePattern.MatchString(draft.Code):
		return apperrors.NewValidationError(msgCodeInvalid)
	case draft.Name == "":
		return apperrors.NewValidationError(msgNameRequired)
	case draft.Symbol == "":
		return apperrors.NewValidationError(msgSymbolRequired)
	case !draft.ExchangeRateToUSD.Valid || !draft.ExchangeRateToUSD.Decimal.IsPositive():
		return apperrors.NewValidationError(msgRateInvalid)
	}
	return nil
}

func applyDraft(c *domain.Currency, draft domain.CurrencyDraft) {
	c.Code = draft.Code
	c.Name = draft.Name
	c.Symbol = draft.Symbol
	c.ExchangeRateToUSD = draft.ExchangeRateToUSD.Decimal
	c.IsBaseCurrency = draft.IsBaseCurrency
	c.IsActive = draft.IsActive
}

func onlyActiveChanged(p domain.CurrencyPatch) bool {
	return p.Code == nil && p.Name == nil && p.Symbol == nil &&
		p.ExchangeRateToUSD == nil && p.IsBaseCurrency == nil
}
