package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_admin/internal/apperrors"
	"github.com/SscSPs/currency_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_admin/internal/core/ports/services"
)

// exchangeRateService provides read access to the rate history.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter, page domain.Page) ([]domain.ExchangeRate, int, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, 0, apperrors.NewValidationError("end_date must not be before start_date")
	}

	rates, total, err := s.rateRepo.ListExchangeRates(ctx, filter, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, 0, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	return rates, total, nil
}
