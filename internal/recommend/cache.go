// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package recommend

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
)

// rankingCache memoises similarity rankings by (seed, n). Rankings depend
// only on the immutable catalog and embeddings, so entries never go stale.
type rankingCache struct {
	lru *lru.Cache[string, []ScoredAction]
}

func newRankingCache(size int) (*rankingCache, error) {
	c, err := lru.New[string, []ScoredAction](size)
	if err != nil {
		return nil, err
	}
	return &rankingCache{lru: c}, nil
}

func rankingKey(seedID string, n int) string {
	return seedID + "\x00" + strconv.Itoa(n)
}

// get returns a deep copy so callers can modify the items, including their
// Impact and Tags, freely.
func (c *rankingCache) get(seedID string, n int) ([]ScoredAction, bool) {
	items, ok := c.lru.Get(rankingKey(seedID, n))
	if !ok {
		return nil, false
	}
	return cloneItems(items), true
}

func (c *rankingCache) put(seedID string, n int, items []ScoredAction) {
	c.lru.Add(rankingKey(seedID, n), cloneItems(items))
}

func cloneItems(items []ScoredAction) []ScoredAction {
	out := make([]ScoredAction, len(items))
	for i, it := range items {
		out[i] = ScoredAction{Action: it.Action.Clone(), Score: it.Score}
	}
	return out
}

func (c *rankingCache) len() int {
	return c.lru.Len()
}
