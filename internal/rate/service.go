package rate

import (
	"context"
	"fmt"
	"fxledger/internal/adapters"
	"fxledger/internal/domain"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Service is the daily rate cache: memory first, then the persisted set for
// today, then the external provider.
type Service struct {
	repo   adapters.RateRepository
	client adapters.RateClient
	memory adapters.RateMemoryCache
	clock  clockwork.Clock
	loc    *time.Location
	group  singleflight.Group

	loadTimeout time.Duration
}

// loadTimeout bounds a shared load of a day's rates, whoever started it.
const loadTimeout = 20 * time.Second

// Today is the calendar date rate sets are currently keyed by.
func (s *Service) Today() string {
	return dateAt(s.clock, s.loc, 0)
}

func (s *Service) GetRates(ctx context.Context) (domain.Rates, error) {
	_, rates, err := s.GetDatedRates(ctx)
	return rates, err
}

// GetDatedRates returns today's rate set together with the date it belongs to.
func (s *Service) GetDatedRates(ctx context.Context) (string, domain.Rates, error) {
	today := s.Today()

	if s.memory != nil {
		if rates, ok := s.memory.Get(today); ok {
			return today, rates, nil
		}
	}

	// Concurrent misses for the same day share one load. The load is detached
	// from the caller that started it and carries its own deadline; each caller
	// stops waiting when its own context ends.
	ch := s.group.DoChan(today, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()
		return s.loadOrFetch(loadCtx, today)
	})

	select {
	case <-ctx.Done():
		return "", nil, fmt.Errorf("gave up waiting for rates of %s: %w", today, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", nil, res.Err
		}
		return today, res.Val.(domain.Rates).Clone(), nil
	}
}

func (s *Service) loadOrFetch(ctx context.Context, date string) (domain.Rates, error) {
	stored, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load rates for %s: %w", date, err)
	}
	if len(stored) > 0 {
		logrus.Debugf("Loaded %d currency rates for %s from database", len(stored), date)
		s.remember(date, stored)
		return stored, nil
	}

	logrus.Infof("No cached rates found for %s, fetching from provider", date)
	fetched, err := s.client.GetUSDRates(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRateFetchFailed, err)
	}
	if len(fetched) == 0 {
		return nil, fmt.Errorf("%w: provider returned no rates for %s", domain.ErrRateFetchFailed, date)
	}

	if err = s.repo.ReplaceForDate(ctx, date, fetched); err != nil {
		return nil, fmt.Errorf("failed to store rates for %s: %w", date, err)
	}
	logrus.Infof("Stored %d new currency rates for %s", len(fetched), date)

	s.remember(date, fetched)
	return fetched, nil
}

func (s *Service) remember(date string, rates domain.Rates) {
	if s.memory != nil {
		s.memory.Set(date, rates)
	}
}

// CalculateRate returns how many units of `to` one unit of `from` buys.
// Rates are USD based, so non-USD pairs are crossed through USD.
func (s *Service) CalculateRate(ctx context.Context, from, to string) (float64, error) {
	from = domain.NormalizeCode(from)
	to = domain.NormalizeCode(to)

	rates, err := s.GetRates(ctx)
	if err != nil {
		return 0, err
	}

	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidCurrencyPair, to)
	}
	if from == domain.BaseCurrency {
		return toRate, nil
	}

	fromRate, ok := rates[from]
	if !ok {
		return 0, fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidCurrencyPair, from)
	}
	if fromRate == 0 {
		return 0, fmt.Errorf("%w: zero rate for %q", domain.ErrInvalidCurrencyPair, from)
	}
	return toRate / fromRate, nil
}

func NewService(repo adapters.RateRepository, client adapters.RateClient, memory adapters.RateMemoryCache, clock clockwork.Clock, loc *time.Location) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{repo: repo, client: client, memory: memory, clock: clock, loc: loc, loadTimeout: loadTimeout}
}

func dateAt(clock clockwork.Clock, loc *time.Location, offsetDays int) string {
	return clock.Now().In(loc).AddDate(0, 0, offsetDays).Format(domain.DateLayout)
}
