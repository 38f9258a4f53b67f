package admin_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/currency_admin/internal/core/admin"
	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validDraft() domain.CurrencyDraft {
	return domain.CurrencyDraft{
		Code:              "EUR",
		Name:              "Euro",
		Symbol:            "€",
		ExchangeRateToUSD: decimal.NewNullDecimal(decimal.RequireFromString("0.92")),
		IsActive:          true,
	}
}

func TestValidate_ValidDraft(t *testing.T) {
	violations := admin.Validate(validDraft())
	assert.True(t, violations.Valid())
	assert.Empty(t, violations)
}

func TestValidate_CodeLength(t *testing.T) {
	for _, code := range []string{"E", "EU", "EURO", "EUROS"} {
		draft := validDraft()
		draft.Code = code
		violations := admin.Validate(draft)
		assert.Equal(t, "Must be 3 characters", violations[admin.FieldCode], "code %q", code)
		assert.Len(t, violations, 1)
	}

	draft := validDraft()
	draft.Code = ""
	assert.Equal(t, "Currency code is required", admin.Validate(draft)[admin.FieldCode])

	// Length counts characters, not bytes.
	draft.Code = "€€€"
	assert.True(t, admin.Validate(draft).Valid())
}

func TestValidate_RequiredText(t *testing.T) {
	draft := validDraft()
	draft.Name = ""
	draft.Symbol = ""

	violations := admin.Validate(draft)

	assert.Equal(t, "Currency name is required", violations[admin.FieldName])
	assert.Equal(t, "Currency symbol is required", violations[admin.FieldSymbol])
	assert.Len(t, violations, 2)
}

func TestValidate_ExchangeRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    decimal.NullDecimal
		wantMsg string
	}{
		{name: "missing", rate: decimal.NullDecimal{}, wantMsg: "Exchange rate is required"},
		{name: "negative", rate: decimal.NewNullDecimal(decimal.NewFromInt(-3)), wantMsg: "Rate must be positive"},
		{name: "zero", rate: decimal.NewNullDecimal(decimal.Zero), wantMsg: "Rate must be positive"},
		{name: "below minimum", rate: decimal.NewNullDecimal(decimal.RequireFromString("0.0000009")), wantMsg: "Rate must be positive"},
		{name: "exactly minimum", rate: decimal.NewNullDecimal(admin.MinExchangeRate)},
		{name: "just above minimum", rate: decimal.NewNullDecimal(decimal.RequireFromString("0.0000011"))},
		{name: "large", rate: decimal.NewNullDecimal(decimal.RequireFromString("32000.5"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			draft.ExchangeRateToUSD = tt.rate

			violations := admin.Validate(draft)

			if tt.wantMsg == "" {
				assert.True(t, violations.Valid(), "unexpected violations: %v", violations)
				return
			}
			assert.Equal(t, tt.wantMsg, violations[admin.FieldExchangeRateToUSD])
		})
	}
}

func TestValidate_ZeroRateIsPresentButTooSmall(t *testing.T) {
	draft := validDraft()
	draft.ExchangeRateToUSD = decimal.NewNullDecimal(decimal.Zero)

	violations := admin.Validate(draft)

	assert.False(t, violations.Valid())
	assert.Equal(t, "Rate must be positive", violations[admin.FieldExchangeRateToUSD])
	assert.NotEqual(t, "Exchange rate is required", violations[admin.FieldExchangeRateToUSD])
	assert.Len(t, violations, 1)
}

func TestValidate_DefaultsNeedTextFields(t *testing.T) {
	violations := admin.Validate(domain.NewCurrencyDraft())

	assert.Contains(t, violations, admin.FieldCode)
	assert.Contains(t, violations, admin.FieldName)
	assert.Contains(t, violations, admin.FieldSymbol)
	assert.NotContains(t, violations, admin.FieldExchangeRateToUSD)
}

func TestValidationError_Message(t *testing.T) {
	err := &admin.ValidationError{Violations: admin.Violations{
		admin.FieldSymbol: "Currency symbol is required",
		admin.FieldCode:   "Must be 3 characters",
	}}
	msg := err.Error()
	assert.True(t, strings.Index(msg, "code:") < strings.Index(msg, "symbol:"))
}
