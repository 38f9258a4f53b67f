package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_admin/internal/apperrors"
	"github.com/SscSPs/currency_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_admin/internal/core/ports/repositories"
	"github.com/SscSPs/currency_admin/internal/models"
	"github.com/SscSPs/currency_admin/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `id, code, name, symbol, exchange_rate_to_usd, is_base_currency, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Symbol,
		&c.ExchangeRateToUSD,
		&c.IsBaseCurrency,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxCurrencyRepository) findOne(ctx context.Context, where string, arg any) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE ` + where + ` LIMIT 1;`
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	c, err := r.findOne(ctx, "id = $1", id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find currency %d: %w", id, err)
	}
	return c, err
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	c, err := r.findOne(ctx, "code = $1", code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}
	return c, err
}

// FindBaseCurrency retrieves the currency flagged as base.
func (r *PgxCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	c, err := r.findOne(ctx, "is_base_currency = $1", true)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find base currency: %w", err)
	}
	return c, err
}

// ListCurrencies retrieves currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter, page domain.Page) ([]domain.Currency, int, error) {
	where := ""
	if filter.ActiveOnly {
		where = " WHERE is_active"
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM currencies`+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count currencies: %w", err)
	}

	query := `SELECT ` + currencyColumns + ` FROM currencies` + where + ` ORDER BY code`
	args := []any{}
	if !page.IsZero() {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, page.Size, page.Offset())
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), total, nil
}

// SaveCurrency inserts a new currency and stores the generated id on it.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency *domain.Currency) error {
	m := mapping.ToModelCurrency(*currency)
	query := `
		INSERT INTO currencies (code, name, symbol, exchange_rate_to_usd, is_base_currency, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Code, m.Name, m.Symbol, m.ExchangeRateToUSD, m.IsBaseCurrency, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&currency.ID)
	if err != nil {
		return mapWriteError(err, "save currency "+m.Code)
	}
	return nil
}

// UpdateCurrency overwrites the editable columns of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		UPDATE currencies
		SET code = $1, name = $2, symbol = $3, exchange_rate_to_usd = $4,
			is_base_currency = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Code, m.Name, m.Symbol, m.ExchangeRateToUSD,
		m.IsBaseCurrency, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.ID,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("update currency %d", m.ID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCurrency removes a currency. Its exchange rates go with it.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete currency %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
