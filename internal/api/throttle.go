// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxThrottledNames bounds the number of per-name limiters kept in memory.
// The least recently used name loses its limiter first.
const maxThrottledNames = 10000

// NameThrottle limits leaderboard submissions per display name with a token
// bucket per name. A zero value is not usable; use NewNameThrottle.
type NameThrottle struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewNameThrottle allows burst submissions per name, refilled at one token
// per interval. A non-positive burst disables throttling and returns nil.
func NewNameThrottle(burst int, interval time.Duration) *NameThrottle {
	if burst <= 0 {
		return nil
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, *rate.Limiter](maxThrottledNames)
	return &NameThrottle{
		limiters: cache,
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow consumes a token for name. Names are compared case-insensitively
// after trimming. A nil throttle allows everything.
func (t *NameThrottle) Allow(name string) bool {
	if t == nil {
		return true
	}
	key := strings.ToLower(strings.TrimSpace(name))

	t.mu.Lock()
	lim, ok := t.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(t.limit, t.burst)
		t.limiters.Add(key, lim)
	}
	t.mu.Unlock()

	return lim.AllowN(t.now(), 1)
}
