package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_admin/internal/core/ports/repositories"
	"github.com/SscSPs/currency_admin/internal/models"
	"github.com/SscSPs/currency_admin/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the exchange rate repository ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

// rateFilterClause renders filter as a WHERE clause and its positional args.
func rateFilterClause(filter domain.ExchangeRateFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.StartDate != nil {
		add("rate_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("rate_date <= $%d", *filter.EndDate)
	}
	if filter.FromCurrency != nil {
		add("from_currency_id = $%d", *filter.FromCurrency)
	}
	if filter.ToCurrency != nil {
		add("to_currency_id = $%d", *filter.ToCurrency)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListExchangeRates retrieves observations newest first.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter, page domain.Page) ([]domain.ExchangeRate, int, error) {
	where, args := rateFilterClause(filter)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM exchange_rates`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count exchange rates: %w", err)
	}

	query := `
		SELECT id, from_currency_id, to_currency_id, rate, rate_date, source, created_at
		FROM exchange_rates` + where + `
		ORDER BY rate_date DESC, id DESC`
	if !page.IsZero() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, page.Size, page.Offset())
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var m models.ExchangeRate
		err := row.Scan(&m.ID, &m.FromCurrencyID, &m.ToCurrencyID, &m.Rate, &m.RateDate, &m.Source, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), total, nil
}

// RecordRatesToCurrency snapshots every active currency's rate into target
// for date inside one transaction.
func (r *PgxExchangeRateRepository) RecordRatesToCurrency(ctx context.Context, target int64, date time.Time, source string) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// Lock the currency rows so the snapshot is consistent with concurrent edits.
	if _, err := tx.Exec(ctx, `SELECT id FROM currencies WHERE is_active FOR SHARE;`); err != nil {
		return 0, fmt.Errorf("failed to lock currencies: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO exchange_rates (from_currency_id, to_currency_id, rate, rate_date, source, created_at)
		SELECT c.id, $1, c.exchange_rate_to_usd, $2, $3, NOW()
		FROM currencies c
		WHERE c.is_active AND c.id <> $1
		ON CONFLICT (from_currency_id, to_currency_id, rate_date) DO UPDATE SET
			rate = EXCLUDED.rate,
			source = EXCLUDED.source,
			created_at = EXCLUDED.created_at;
	`, target, date, source)
	if err != nil {
		return 0, mapWriteError(err, "record exchange rates")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
