// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/ecobee/internal/catalog"
)

// ErrUnknownAction is returned when an action id is not in the catalog.
var ErrUnknownAction = errors.New("unknown action")

// Strategy identifies which ranking produced a response.
type Strategy int

const (
	// StrategyDomainTop returns the best action of every domain.
	StrategyDomainTop Strategy = iota
	// StrategySimilarity ranks by embedding similarity to a seed action.
	StrategySimilarity
	// StrategyBoundaryPriority ranks by fit to a user's weakest boundaries.
	StrategyBoundaryPriority
)

// String returns the strategy name used in responses, logs and metrics.
func (s Strategy) String() string {
	switch s {
	case StrategyDomainTop:
		return "domain_top"
	case StrategySimilarity:
		return "similarity"
	case StrategyBoundaryPriority:
		return "boundary_priority"
	default:
		return "unknown"
	}
}

// MarshalText lets Strategy encode as its name in JSON.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ScoredAction is an action with the score that placed it.
type ScoredAction struct {
	// Action is the recommended catalog entry.
	Action catalog.Action `json:"action"`

	// Score is strategy specific: cosine similarity for similarity ranking,
	// feasibility*boundary_gap for domain-top, the weighted fit for
	// boundary priority.
	Score float64 `json:"score"`
}

// Request is a recommendation request.
type Request struct {
	// SeedID is the optional action to find similar actions for.
	SeedID string `json:"seed_id,omitempty"`

	// N is the number of recommendations for similarity ranking.
	// Defaults to Config.Limits.DefaultK when zero or negative.
	N int `json:"n,omitempty"`

	// RequestID is used for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response is a recommendation response.
type Response struct {
	// Strategy is the ranking that produced Items.
	Strategy Strategy `json:"strategy"`

	// Items is the ordered result. At most N for similarity ranking; one per
	// domain for the domain-top fallback.
	Items []ScoredAction `json:"items"`

	// Metadata carries timing and diagnostics.
	Metadata ResponseMetadata `json:"metadata"`
}

// Actions returns the ordered actions without their scores.
func (r *Response) Actions() []catalog.Action {
	out := make([]catalog.Action, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Action
	}
	return out
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	SeedID    string    `json:"seed_id,omitempty"`
	Requested int       `json:"requested"`
	Returned  int       `json:"returned"`
	Rerankers []string  `json:"rerankers,omitempty"`
	LatencyMS int64     `json:"latency_ms"`
	CacheHit  bool      `json:"cache_hit"`
	Timestamp time.Time `json:"timestamp"`
}

// Reranker reorders a relevance-sorted list for a secondary objective.
type Reranker interface {
	// Name returns the reranker identifier, e.g. "mmr".
	Name() string

	// Rerank returns up to k items. Input is sorted by relevance.
	Rerank(ctx context.Context, items []ScoredAction, k int) []ScoredAction
}

// Details is the expanded view of one action.
type Details struct {
	Action    catalog.Action     `json:"action"`
	Neighbors []catalog.Action   `json:"neighbors"`
	Similar   []ScoredAction     `json:"similar"`
	Resources []catalog.Resource `json:"resources"`
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Requests         int64 `json:"requests"`
	Similarity       int64 `json:"similarity"`
	DomainTop        int64 `json:"domain_top"`
	BoundaryPriority int64 `json:"boundary_priority"`
	CacheHits        int64 `json:"cache_hits"`
	CacheMisses      int64 `json:"cache_misses"`
}
