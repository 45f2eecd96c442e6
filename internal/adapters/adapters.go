package adapters

import (
	"context"
	"fxledger/internal/domain"
)

type RateClient interface {
	GetUSDRates(ctx context.Context, date string) (domain.Rates, error)
}

type RateRepository interface {
	FindByDate(ctx context.Context, date string) (domain.Rates, error)
	ReplaceForDate(ctx context.Context, date string, rates domain.Rates) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type RateMemoryCache interface {
	Get(date string) (domain.Rates, bool)
	Set(date string, rates domain.Rates)
}

// BalanceStore is the per-record contract shared by the pool-backed repository
// and the transaction-scoped store handed out by WithinTx.
type BalanceStore interface {
	// Find returns the balance and whether the record exists. Inside WithinTx
	// the row is locked until the transaction ends.
	Find(ctx context.Context, username, currency string) (float64, bool, error)
	FindByUser(ctx context.Context, username string) ([]domain.Balance, error)
	// Add creates the record with delta or increments it, returning the new balance.
	Add(ctx context.Context, username, currency string, delta float64) (float64, error)
	Save(ctx context.Context, balance domain.Balance) error
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, username, currency string) (bool, error)
}

type BalanceRepository interface {
	BalanceStore
	WithinTx(ctx context.Context, fn func(store BalanceStore) error) error
}

type UserRepository interface {
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, username string) error
	List(ctx context.Context) ([]string, error)
}
