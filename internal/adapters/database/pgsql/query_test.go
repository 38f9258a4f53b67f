package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/currency_admin/internal/apperrors"
	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRateFilterClause(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := int64(1)

	where, args := rateFilterClause(domain.ExchangeRateFilter{StartDate: &start, ToCurrency: &to})

	assert.Equal(t, " WHERE rate_date >= $1 AND to_currency_id = $2", where)
	assert.Equal(t, []any{start, int64(1)}, args)

	where, args = rateFilterClause(domain.ExchangeRateFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestMapWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "currencies_code_key"}
	err := mapWriteError(dup, "save currency EUR")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "currencies_code_key")

	other := errors.New("connection reset")
	err = mapWriteError(other, "save currency EUR")
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
}
