package rate

import (
	"context"
	"fmt"
	"fxledger/internal/adapters"
	"fxledger/internal/domain"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// RatesWarmer loads today's rate set, fetching it if nothing is stored yet.
type RatesWarmer interface {
	GetRates(ctx context.Context) (domain.Rates, error)
}

const refreshTimeout = 30 * time.Second

type RefreshJob struct {
	rates         RatesWarmer
	repo          adapters.RateRepository
	clock         clockwork.Clock
	loc           *time.Location
	retentionDays int
}

// Run makes sure today's rates are stored, then drops sets older than the
// retention window. A retention of zero keeps history forever.
func (j *RefreshJob) Run(ctx context.Context, execID string) error {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	// STEP 1: warm today's rates, provider is only called when the day is missing
	rates, err := j.rates.GetRates(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh rates: %w", err)
	}
	logrus.Infof("%d currency rates ready for %s; execID: %s", len(rates), dateAt(j.clock, j.loc, 0), execID)

	if j.retentionDays <= 0 {
		return nil
	}

	// STEP 2: purge history outside the retention window
	cutoff := dateAt(j.clock, j.loc, -j.retentionDays)
	deleted, err := j.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge rates before %s: %w", cutoff, err)
	}
	if deleted > 0 {
		logrus.Infof("%d stale currency rates before %s were purged; execID: %s", deleted, cutoff, execID)
	}
	return nil
}

func NewRefreshJob(rates RatesWarmer, repo adapters.RateRepository, clock clockwork.Clock, loc *time.Location, retentionDays int) *RefreshJob {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &RefreshJob{rates: rates, repo: repo, clock: clock, loc: loc, retentionDays: retentionDays}
}
