package postgres_test

import (
	"context"
	"sync"
	"testing"

	"fxledger/internal/account"
	"fxledger/internal/adapters/postgres"
	"fxledger/internal/domain"

	"github.com/stretchr/testify/require"
)

type fixedRate float64

func (r fixedRate) CalculateRate(context.Context, string, string) (float64, error) {
	return float64(r), nil
}

func newLedger(t *testing.T, rate float64) (*account.Service, *postgres.BalanceRepository) {
	pool := setupPostgres(t)
	seedUser(t, pool, "testuser")
	balances := postgres.NewBalanceRepository(pool)
	return account.NewService(postgres.NewUserRepository(pool), fixedRate(rate), balances), balances
}

func TestLedger_Scenario_OverPostgres(t *testing.T) {
	ledger, _ := newLedger(t, 0.85)
	ctx := context.Background()

	dep, err := ledger.Deposit(ctx, "testuser", "USD", 100)
	require.NoError(t, err)
	require.Equal(t, 100.0, dep.Balance)

	tr, err := ledger.Transfer(ctx, "testuser", 100, "usd", "eur")
	require.NoError(t, err)
	require.Equal(t, 0.0, tr.FromBalance)
	require.Equal(t, 85.0, tr.ToBalance)

	require.NoError(t, ledger.DeleteAccount(ctx, "testuser", "usd"))
	require.ErrorIs(t, ledger.DeleteAccount(ctx, "testuser", "usd"), domain.ErrAccountNotFound)

	accounts, err := ledger.GetAccounts(ctx, "testuser")
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"eur": 85}, accounts)

	_, err = ledger.Deposit(ctx, "ghost", "usd", 1)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLedger_ConcurrentTransfersNeverOverdraw(t *testing.T) {
	ledger, balances := newLedger(t, 1)
	ctx := context.Background()
	_, err := ledger.SetBalance(ctx, "testuser", "usd", 100)
	require.NoError(t, err)

	const workers = 10
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, trErr := ledger.Transfer(ctx, "testuser", 30, "usd", "eur")
			errCh <- trErr
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for trErr := range errCh {
		if trErr == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, trErr, domain.ErrInsufficientFunds)
	}
	require.Equal(t, 3, succeeded)

	usd, _, err := balances.Find(ctx, "testuser", "usd")
	require.NoError(t, err)
	eur, _, err := balances.Find(ctx, "testuser", "eur")
	require.NoError(t, err)
	require.Equal(t, 10.0, usd)
	require.Equal(t, 90.0, eur)
}

func TestLedger_OppositeTransfersDoNotDeadlock(t *testing.T) {
	ledger, balances := newLedger(t, 1)
	ctx := context.Background()
	_, err := ledger.SetBalance(ctx, "testuser", "usd", 1000)
	require.NoError(t, err)
	_, err = ledger.SetBalance(ctx, "testuser", "eur", 1000)
	require.NoError(t, err)

	const workers = 20
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		from, to := "usd", "eur"
		if i%2 == 1 {
			from, to = to, from
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, trErr := ledger.Transfer(ctx, "testuser", 1, from, to)
			errCh <- trErr
		}()
	}
	wg.Wait()
	close(errCh)
	for trErr := range errCh {
		require.NoError(t, trErr)
	}

	usd, _, err := balances.Find(ctx, "testuser", "usd")
	require.NoError(t, err)
	eur, _, err := balances.Find(ctx, "testuser", "eur")
	require.NoError(t, err)
	require.Equal(t, 1000.0, usd)
	require.Equal(t, 1000.0, eur)
}
