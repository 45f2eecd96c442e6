package postgres

import (
	"context"
	"errors"
	"fmt"
	"fxledger/internal/adapters"
	"fxledger/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type balanceStore struct {
	q    querier
	inTx bool
}

func (s *balanceStore) Find(ctx context.Context, username, currency string) (float64, bool, error) {
	q := `select balance from balances where username = $1 and currency_code = $2`
	if s.inTx {
		q += ` for update`
	}

	var balance float64
	if err := s.q.QueryRow(ctx, q, username, currency).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to select balance for %q/%q: %w", username, currency, err)
	}
	return balance, true, nil
}

func (s *balanceStore) FindByUser(ctx context.Context, username string) ([]domain.Balance, error) {
	const q = `
		select username, currency_code, balance
		from balances
		where username = $1
		order by currency_code;
	`

	rows, err := s.q.Query(ctx, q, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances for %q: %w", username, err)
	}
	defer rows.Close()

	balances := make([]domain.Balance, 0, 8)
	for rows.Next() {
		var b domain.Balance
		if err = rows.Scan(&b.Username, &b.CurrencyCode, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances = append(balances, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balances: %w", err)
	}
	return balances, nil
}

func (s *balanceStore) Add(ctx context.Context, username, currency string, delta float64) (float64, error) {
	const q = `
		insert into balances (username, currency_code, balance, updated_at)
		values ($1, $2, $3, now())
		on conflict (username, currency_code) do update
		  set balance = balances.balance + excluded.balance, updated_at = now()
		returning balance;
	`

	var balance float64
	if err := s.q.QueryRow(ctx, q, username, currency, delta).Scan(&balance); err != nil {
		return 0, fmt.Errorf("failed to add %v to %q/%q: %w", delta, username, currency, err)
	}
	return balance, nil
}

func (s *balanceStore) Save(ctx context.Context, b domain.Balance) error {
	const q = `
		insert into balances (username, currency_code, balance, updated_at)
		values ($1, $2, $3, now())
		on conflict (username, currency_code) do update
		  set balance = excluded.balance, updated_at = now();
	`

	if _, err := s.q.Exec(ctx, q, b.Username, b.CurrencyCode, b.Amount); err != nil {
		return fmt.Errorf("failed to save balance for %q/%q: %w", b.Username, b.CurrencyCode, err)
	}
	return nil
}

func (s *balanceStore) Delete(ctx context.Context, username, currency string) (bool, error) {
	tag, err := s.q.Exec(ctx, `delete from balances where username = $1 and currency_code = $2`, username, currency)
	if err != nil {
		return false, fmt.Errorf("failed to delete balance %q/%q: %w", username, currency, err)
	}
	return tag.RowsAffected() > 0, nil
}

// BalanceRepository runs single-record statements on the pool. Multi-record
// work goes through WithinTx, where Find takes a row lock (READ COMMITTED +
// SELECT ... FOR UPDATE) so concurrent transfers on the same account serialize.
type BalanceRepository struct {
	balanceStore
	pool *pgxpool.Pool
}

func (r *BalanceRepository) WithinTx(ctx context.Context, fn func(store adapters.BalanceStore) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = fn(&balanceStore{q: tx, inTx: true}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{balanceStore: balanceStore{q: pool}, pool: pool}
}
