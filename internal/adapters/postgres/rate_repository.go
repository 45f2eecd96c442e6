package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"fxledger/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

func (r *RateRepository) FindByDate(ctx context.Context, date string) (domain.Rates, error) {
	const q = `
		select currency_code, rate
		from currency_rates
		where rate_date = $1::date;
	`

	rows, err := r.pool.Query(ctx, q, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates for %q: %w", date, err)
	}
	defer rows.Close()

	rates := make(domain.Rates, 256)
	for rows.Next() {
		var (
			code string
			rate float64
		)
		if err = rows.Scan(&code, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}
		rates[domain.NormalizeCode(code)] = rate
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates for %q: %w", date, err)
	}
	return rates, nil
}

type rateRow struct {
	CurrencyCode string  `json:"currency_code"`
	Rate         float64 `json:"rate"`
}

// ReplaceForDate swaps the whole rate set of a date in one transaction: every
// fetched code is upserted and codes missing from the fresh set are removed.
// Concurrent readers see either the old set or the new one.
func (r *RateRepository) ReplaceForDate(ctx context.Context, date string, rates domain.Rates) error {
	if len(rates) == 0 {
		return fmt.Errorf("refusing to store an empty rate set for %q", date)
	}

	payload := make([]rateRow, 0, len(rates))
	codes := make([]string, 0, len(rates))
	for code, rate := range rates {
		code = domain.NormalizeCode(code)
		payload = append(payload, rateRow{CurrencyCode: code, Rate: rate})
		codes = append(codes, code)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal rates: %w", err)
	}

	const upsert = `
		insert into currency_rates (rate_date, currency_code, rate, updated_at)
		select $1::date, ir.currency_code, ir.rate, now()
		from json_to_recordset($2::json) as ir(currency_code text, rate double precision)
		on conflict (rate_date, currency_code) do update
		  set rate = excluded.rate, updated_at = now();
	`
	const prune = `
		delete from currency_rates
		where rate_date = $1::date and not (currency_code = any($2));
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, upsert, date, json.RawMessage(payloadJSON)); err != nil {
		return fmt.Errorf("failed to upsert rates for %q: %w", date, err)
	}
	if _, err = tx.Exec(ctx, prune, date, codes); err != nil {
		return fmt.Errorf("failed to prune stale rates for %q: %w", date, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *RateRepository) DeleteBefore(ctx context.Context, date string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `delete from currency_rates where rate_date < $1::date`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete rates before %q: %w", date, err)
	}
	return tag.RowsAffected(), nil
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}
