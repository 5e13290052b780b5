// Package ratecache is a read-through cache of exchange rates per base
// currency, for clients of the rate synchronization service.
//
// The cache is advisory. Anything with financial consequences must re-derive
// its rate from the server at transaction time.
//
// Concurrent misses for the same base are not collapsed; each one calls the
// Fetcher and the last Put wins.
package ratecache

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTTL matches the server's refresh window.
const DefaultTTL = 24 * time.Hour

// Rate is one row as served by GET /exchange-rates.
type Rate struct {
	ID             string          `json:"id"`
	BaseCurrency   string          `json:"base_currency"`
	TargetCurrency string          `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// Snapshot is the cached row set for one base currency.
type Snapshot struct {
	BaseCurrency string
	Rates        []Rate
	FetchedAt    time.Time
}

// Fetcher loads the current rates for a base currency.
type Fetcher interface {
	FetchRates(ctx context.Context, baseCurrency string) ([]Rate, error)
}

// Cache maps base currency to its latest Snapshot. Entries are only ever
// overwritten, never evicted.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]Snapshot
}

type Option func(*Cache)

// WithTTL sets how long a snapshot is served. Values <= 0 are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(fetcher Fetcher, opts ...Option) *Cache {
	c := &Cache{
		fetcher: fetcher,
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[string]Snapshot),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func normalize(base string) string {
	return strings.ToUpper(strings.TrimSpace(base))
}

// IsValid reports whether a snapshot for base exists and is younger than the TTL.
func (c *Cache) IsValid(base string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.validLocked(normalize(base))
	return ok
}

func (c *Cache) validLocked(base string) (Snapshot, bool) {
	snap, ok := c.entries[base]
	if !ok {
		return Snapshot{}, false
	}
	return snap, c.now().Sub(snap.FetchedAt) < c.ttl
}

// Get serves base from the cache when valid and otherwise fetches, stores
// and returns a new snapshot. A failed fetch leaves any old entry in place.
// The returned slice is the caller's own copy.
func (c *Cache) Get(ctx context.Context, base string) ([]Rate, error) {
	base = normalize(base)
	if base == "" {
		return nil, fmt.Errorf("ratecache: base currency is required")
	}

	c.mu.Lock()
	snap, ok := c.validLocked(base)
	c.mu.Unlock()
	if ok {
		return slices.Clone(snap.Rates), nil
	}

	rates, err := c.fetcher.FetchRates(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("ratecache: fetch %s: %w", base, err)
	}
	c.Put(base, rates)
	return slices.Clone(rates), nil
}

// Put stores rates for base with FetchedAt set to now.
func (c *Cache) Put(base string, rates []Rate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	base = normalize(base)
	c.entries[base] = Snapshot{BaseCurrency: base, Rates: slices.Clone(rates), FetchedAt: c.now()}
}

// Snapshot returns the stored entry for base regardless of age.
func (c *Cache) Snapshot(base string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, ok := c.entries[normalize(base)]
	snap.Rates = slices.Clone(snap.Rates)
	return snap, ok
}

// Len is the number of base currencies held.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Lookup finds target within rates.
func Lookup(rates []Rate, target string) (Rate, bool) {
	target = normalize(target)
	for _, r := range rates {
		if r.TargetCurrency == target {
			return r, true
		}
	}
	return Rate{}, false
}
