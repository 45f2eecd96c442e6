package account

import (
	"context"
	"errors"
	"fmt"
	"fxledger/internal/adapters"
	"fxledger/internal/domain"

	"github.com/sirupsen/logrus"
)

type UserDirectory interface {
	Exists(ctx context.Context, username string) (bool, error)
}

type RateCalculator interface {
	CalculateRate(ctx context.Context, from, to string) (float64, error)
}

// Service is the ledger of per-user, per-currency balances.
type Service struct {
	users    UserDirectory
	rates    RateCalculator
	balances adapters.BalanceRepository
}

// ensureUser returns the normalized username once the user is known to exist.
func (s *Service) ensureUser(ctx context.Context, username string) (string, error) {
	username = domain.NormalizeUsername(username)
	ok, err := s.users.Exists(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return username, nil
}

// Deposit adds amount to the user's balance in currency, creating the account
// when missing. The amount is not sign checked.
func (s *Service) Deposit(ctx context.Context, username, currency string, amount float64) (domain.DepositResult, error) {
	username, err := s.ensureUser(ctx, username)
	if err != nil {
		return domain.DepositResult{}, err
	}
	currency = domain.NormalizeCode(currency)

	balance, err := s.balances.Add(ctx, username, currency, amount)
	if err != nil {
		return domain.DepositResult{}, fmt.Errorf("failed to deposit into %s/%s: %w", username, currency, err)
	}

	logrus.WithFields(logrus.Fields{"username": username, "currency": currency, "amount": amount}).Info("Deposit applied")
	return domain.DepositResult{Username: username, CurrencyCode: currency, Balance: balance}, nil
}

// Transfer moves amount out of `from` and credits amount converted at today's
// rate to `to`. Debit and credit commit together or not at all.
func (s *Service) Transfer(ctx context.Context, username string, amount float64, from, to string) (domain.TransferResult, error) {
	username, err := s.ensureUser(ctx, username)
	if err != nil {
		return domain.TransferResult{}, err
	}
	from = domain.NormalizeCode(from)
	to = domain.NormalizeCode(to)

	// STEP 1: cheap funds check, so a doomed transfer never prices a pair
	current, ok, err := s.balances.Find(ctx, username, from)
	if err != nil {
		return domain.TransferResult{}, fmt.Errorf("failed to load %s/%s: %w", username, from, err)
	}
	if !ok || current < amount {
		return domain.TransferResult{}, domain.ErrInsufficientFunds
	}

	// STEP 2: price the conversion outside the transaction, the rate may need a provider call
	rate, err := s.rates.CalculateRate(ctx, from, to)
	if err != nil {
		return domain.TransferResult{}, err
	}
	converted := amount * rate

	// STEP 3: debit and credit under a lock on the debited row
	res := domain.TransferResult{Username: username, FromCurrency: from, ToCurrency: to, ConvertedAmount: converted}
	err = s.balances.WithinTx(ctx, func(store adapters.BalanceStore) error {
		// rows are locked in code order so opposite transfers cannot deadlock
		if to < from {
			if _, _, txErr := store.Find(ctx, username, to); txErr != nil {
				return fmt.Errorf("failed to lock %s/%s: %w", username, to, txErr)
			}
		}
		locked, found, txErr := store.Find(ctx, username, from)
		if txErr != nil {
			return fmt.Errorf("failed to lock %s/%s: %w", username, from, txErr)
		}
		if !found || locked < amount {
			return domain.ErrInsufficientFunds
		}

		if res.FromBalance, txErr = store.Add(ctx, username, from, -amount); txErr != nil {
			return fmt.Errorf("failed to debit %s/%s: %w", username, from, txErr)
		}
		if res.ToBalance, txErr = store.Add(ctx, username, to, converted); txErr != nil {
			return fmt.Errorf("failed to credit %s/%s: %w", username, to, txErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return domain.TransferResult{}, domain.ErrInsufficientFunds
		}
		return domain.TransferResult{}, fmt.Errorf("transfer rolled back: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"username": username,
		"from":     from,
		"to":       to,
		"amount":   amount,
		"rate":     rate,
	}).Info("Transfer applied")
	return res, nil
}

// GetAccounts returns every balance the user holds, keyed by currency.
func (s *Service) GetAccounts(ctx context.Context, username string) (map[string]float64, error) {
	username, err := s.ensureUser(ctx, username)
	if err != nil {
		return nil, err
	}

	balances, err := s.balances.FindByUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts of %s: %w", username, err)
	}

	accounts := make(map[string]float64, len(balances))
	for _, b := range balances {
		accounts[b.CurrencyCode] = b.Amount
	}
	return accounts, nil
}

// SetBalance overwrites the balance, creating the account when missing.
func (s *Service) SetBalance(ctx context.Context, username, currency string, amount float64) (domain.SetBalanceResult, error) {
	username, err := s.ensureUser(ctx, username)
	if err != nil {
		return domain.SetBalanceResult{}, err
	}
	currency = domain.NormalizeCode(currency)

	err = s.balances.Save(ctx, domain.Balance{Username: username, CurrencyCode: currency, Amount: amount})
	if err != nil {
		return domain.SetBalanceResult{}, fmt.Errorf("failed to set %s/%s: %w", username, currency, err)
	}

	logrus.WithFields(logrus.Fields{"username": username, "currency": currency, "amount": amount}).Info("Balance overwritten")
	return domain.SetBalanceResult{Username: username, CurrencyCode: currency, Balance: amount}, nil
}

func (s *Service) DeleteAccount(ctx context.Context, username, currency string) error {
	username, err := s.ensureUser(ctx, username)
	if err != nil {
		return err
	}
	currency = domain.NormalizeCode(currency)

	deleted, err := s.balances.Delete(ctx, username, currency)
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", username, currency, err)
	}
	if !deleted {
		return domain.ErrAccountNotFound
	}

	logrus.WithFields(logrus.Fields{"username": username, "currency": currency}).Info("Account deleted")
	return nil
}

func NewService(users UserDirectory, rates RateCalculator, balances adapters.BalanceRepository) *Service {
	return &Service{users: users, rates: rates, balances: balances}
}
