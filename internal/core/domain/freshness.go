package domain

import "time"

// RateTTL is how long a stored or cached rate set is considered current.
const RateTTL = 24 * time.Hour

// NeedsRefresh reports whether a rate set last updated at lastUpdated must be
// refreshed at now under ttl. A set that is exactly ttl old is stale. The
// zero time is always stale.
func NeedsRefresh(lastUpdated, now time.Time, ttl time.Duration) bool {
	if lastUpdated.IsZero() {
		return true
	}
	return now.Sub(lastUpdated) >= ttl
}
