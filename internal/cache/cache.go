// Package cache memoizes computed advisories for a short TTL to bound call
// volume against the wearable provider. There is exactly one subject key in
// practice, so contention is not a concern; correctness under concurrent
// request handlers is.
package cache

import (
	"context"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
)

// DefaultTTL is the advisory memoization window.
const DefaultTTL = 5 * time.Minute

// Cache stores advisories per subject key. An entry past its TTL is
// indistinguishable from one that was never set.
type Cache interface {
	// Get returns the cached advisory for key, or (nil, false) when absent
	// or expired.
	Get(ctx context.Context, key string) (*domain.Advisory, bool)
	// Set stores the advisory under key for ttl.
	Set(ctx context.Context, key string, adv *domain.Advisory, ttl time.Duration)
	// Flush drops all entries.
	Flush(ctx context.Context)
}
