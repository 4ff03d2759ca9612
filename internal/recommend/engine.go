// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package recommend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/embeddings"
)

// similarActions is how many embedding neighbours ActionDetails reports.
const similarActions = 3

// Engine serves recommendations over an injected catalog and embedding store.
// The catalog, graph and store are read-only after construction, so Engine
// is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog *catalog.Catalog
	graph   *catalog.Graph
	ranker  *Ranker
	cache   *rankingCache

	rerankers []Reranker
	rrMu      sync.RWMutex

	requests         atomic.Int64
	similarity       atomic.Int64
	domainTop        atomic.Int64
	boundaryPriority atomic.Int64
	cacheHits        atomic.Int64
	cacheMisses      atomic.Int64
}

// NewEngine creates a recommendation engine. store may be nil, in which case
// every request uses the domain-top fallback.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, c *catalog.Catalog, store *embeddings.Store, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: c,
		graph:   catalog.BuildAffinityGraph(c),
		ranker:  NewRanker(c, store),
	}

	if cfg.Cache.Enabled {
		cache, err := newRankingCache(cfg.Cache.Size)
		if err != nil {
			return nil, fmt.Errorf("create ranking cache: %w", err)
		}
		e.cache = cache
	}

	return e, nil
}

// RegisterReranker adds a reranker applied to similarity results.
func (e *Engine) RegisterReranker(rr Reranker) {
	e.rrMu.Lock()
	defer e.rrMu.Unlock()

	e.rerankers = append(e.rerankers, rr)
	e.logger.Info().
		Str("reranker", rr.Name()).
		Msg("registered reranker")
}

// Recommend ranks by similarity when req.SeedID has an embedding and
// otherwise returns the per-domain winners (not truncated to N).
// A seed that is unknown or lacks an embedding is not an error. The only
// error is a done context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	start := time.Now()
	e.requests.Add(1)

	req = e.prepareRequest(req)
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("seed_id", req.SeedID).
		Int("n", req.N).
		Logger()

	if !e.ranker.CanRank(req.SeedID) {
		if req.SeedID != "" {
			logger.Debug().Msg("seed has no embedding, using domain-top fallback")
		}
		e.domainTop.Add(1)
		items := domainTopScored(e.catalog)
		return e.buildResponse(req, StrategyDomainTop, items, nil, start, false), nil
	}

	e.similarity.Add(1)
	rerankers := e.getRerankers()

	if items, ok := e.cachedRanking(req); ok {
		logger.Debug().Msg("cache hit")
		return e.buildResponse(req, StrategySimilarity, items, rerankers, start, true), nil
	}

	fetch := req.N
	if len(rerankers) > 0 {
		// Rerankers need a wider pool than the final list to choose from.
		fetch = req.N * 2
	}
	items, _ := e.ranker.rank(req.SeedID, fetch)
	items = e.applyRerankers(ctx, items, req.N, rerankers)
	if len(items) > req.N {
		items = items[:req.N]
	}

	if e.cache != nil {
		e.cache.put(req.SeedID, req.N, items)
	}

	resp := e.buildResponse(req, StrategySimilarity, items, rerankers, start, false)
	logger.Debug().
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// RecommendForScores ranks the catalog against per-boundary scores
// (0 worst, 100 best), favouring actions that relieve the weakest boundaries.
func (e *Engine) RecommendForScores(ctx context.Context, scores map[string]float64, n int) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recommend for scores: %w", err)
	}

	start := time.Now()
	e.requests.Add(1)
	e.boundaryPriority.Add(1)

	req := e.prepareRequest(Request{N: n})
	items := RankByBoundaryScores(e.catalog, scores, req.N)

	e.logger.Debug().
		Str("request_id", req.RequestID).
		Strs("weakest", WeakestBoundaries(scores, priorityBoundaries)).
		Int("returned", len(items)).
		Msg("boundary priority recommendation complete")

	return e.buildResponse(req, StrategyBoundaryPriority, items, nil, start, false), nil
}

// ActionDetails returns an action with its graph neighbours, its closest
// actions by embedding and the resources that support it.
func (e *Engine) ActionDetails(id string) (*Details, error) {
	a, ok := e.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, id)
	}

	similar, ok := e.ranker.rank(id, similarActions)
	if !ok {
		similar = []ScoredAction{}
	}
	neighbors := e.graph.Neighbors(id)
	if neighbors == nil {
		neighbors = []catalog.Action{}
	}
	resources := catalog.ResourcesFor(id)
	if resources == nil {
		resources = []catalog.Resource{}
	}

	return &Details{
		Action:    a,
		Neighbors: neighbors,
		Similar:   similar,
		Resources: resources,
	}, nil
}

// Similarity exposes embedding similarity between two actions for rerankers.
func (e *Engine) Similarity(a, b string) float64 {
	return e.ranker.Similarity(a, b)
}

// Catalog returns the injected catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Graph returns the affinity graph built from the catalog.
func (e *Engine) Graph() *catalog.Graph {
	return e.graph
}

// Config returns a copy of the configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:         e.requests.Load(),
		Similarity:       e.similarity.Load(),
		DomainTop:        e.domainTop.Load(),
		BoundaryPriority: e.boundaryPriority.Load(),
		CacheHits:        e.cacheHits.Load(),
		CacheMisses:      e.cacheMisses.Load(),
	}
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if req.N <= 0 {
		req.N = e.config.Limits.DefaultK
	}
	if req.N > e.config.Limits.MaxK {
		req.N = e.config.Limits.MaxK
	}
	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cachedRanking(req Request) ([]ScoredAction, bool) {
	if e.cache == nil {
		return nil, false
	}
	items, ok := e.cache.get(req.SeedID, req.N)
	if !ok {
		e.cacheMisses.Add(1)
		return nil, false
	}
	e.cacheHits.Add(1)
	return items, true
}

func (e *Engine) getRerankers() []Reranker {
	e.rrMu.RLock()
	defer e.rrMu.RUnlock()
	return append([]Reranker(nil), e.rerankers...)
}

func (e *Engine) applyRerankers(ctx context.Context, items []ScoredAction, k int, rerankers []Reranker) []ScoredAction {
	for _, rr := range rerankers {
		items = rr.Rerank(ctx, items, k)
	}
	return items
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(req Request, strategy Strategy, items []ScoredAction, rerankers []Reranker, start time.Time, cacheHit bool) *Response {
	var names []string
	for _, rr := range rerankers {
		names = append(names, rr.Name())
	}
	if items == nil {
		items = []ScoredAction{}
	}

	return &Response{
		Strategy: strategy,
		Items:    items,
		Metadata: ResponseMetadata{
			RequestID: req.RequestID,
			SeedID:    req.SeedID,
			Requested: req.N,
			Returned:  len(items),
			Rerankers: names,
			LatencyMS: time.Since(start).Milliseconds(),
			CacheHit:  cacheHit,
			Timestamp: time.Now().UTC(),
		},
	}
}
