package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/currency_admin/internal/apperrors"
	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/SscSPs/currency_admin/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExchangeRates_PassesFilterAndPage(t *testing.T) {
	repo := new(MockExchangeRateRepository)
	svc := services.NewExchangeRateService(repo)
	ctx := context.Background()

	from := int64(2)
	filter := domain.ExchangeRateFilter{FromCurrency: &from}
	page := domain.Page{Number: 2, Size: 10}
	want := []domain.ExchangeRate{{ID: 11, FromCurrency: 2, ToCurrency: 1, Rate: decimal.RequireFromString("0.92")}}
	repo.On("ListExchangeRates", ctx, filter, page).Return(want, 11, nil).Once()

	rates, total, err := svc.ListExchangeRates(ctx, filter, page)

	require.NoError(t, err)
	assert.Equal(t, want, rates)
	assert.Equal(t, 11, total)
	repo.AssertExpectations(t)
}

func TestListExchangeRates_RejectsInvertedRange(t *testing.T) {
	repo := new(MockExchangeRateRepository)
	svc := services.NewExchangeRateService(repo)

	start := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, _, err := svc.ListExchangeRates(context.Background(), domain.ExchangeRateFilter{StartDate: &start, EndDate: &end}, domain.Page{})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNumberOfCalls(t, "ListExchangeRates", 0)
}

func TestListExchangeRates_RepoError(t *testing.T) {
	repo := new(MockExchangeRateRepository)
	svc := services.NewExchangeRateService(repo)
	ctx := context.Background()
	repo.On("ListExchangeRates", ctx, domain.ExchangeRateFilter{}, domain.Page{}).Return(nil, 0, assert.AnError).Once()

	rates, _, err := svc.ListExchangeRates(ctx, domain.ExchangeRateFilter{}, domain.Page{})

	assert.Nil(t, rates)
	assert.ErrorIs(t, err, assert.AnError)
}
