package cache

import (
	"fmt"
	"fxledger/internal/domain"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoRateCache keeps whole rate sets in memory, keyed by calendar date.
type RistrettoRateCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewRateCache(maxItems int64, ttl time.Duration) (*RistrettoRateCache, error) {
	if maxItems <= 0 {
		maxItems = 8
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
		// every entry costs 1, so MaxCost is the number of dates kept
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate cache failed: %w", err)
	}
	return &RistrettoRateCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoRateCache) Get(date string) (domain.Rates, bool) {
	if v, ok := c.cache.Get(date); ok {
		rates, ok := v.(domain.Rates)
		if !ok || len(rates) == 0 {
			return nil, false
		}
		return rates.Clone(), true
	}
	return nil, false
}

// Set stores a copy of rates; empty sets are never cached.
func (c *RistrettoRateCache) Set(date string, rates domain.Rates) {
	if len(rates) == 0 {
		return
	}
	if c.ttl > 0 {
		c.cache.SetWithTTL(date, rates.Clone(), 1, c.ttl)
	} else {
		c.cache.Set(date, rates.Clone(), 1)
	}
	// make the entry visible to the next Get
	c.cache.Wait()
}

func (c *RistrettoRateCache) Close() { c.cache.Close() }
