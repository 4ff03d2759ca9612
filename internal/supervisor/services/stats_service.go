// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ecobee/internal/metrics"
	"github.com/tomtom215/ecobee/internal/recommend"
)

const defaultStatsInterval = time.Minute

// EngineStats is satisfied by *recommend.Engine.
type EngineStats interface {
	Stats() recommend.Stats
}

// BoardSize is satisfied by *leaderboard.Leaderboard.
type BoardSize interface {
	Len() int
}

// StatsService publishes gauges that are not updated on the request path
// and logs a periodic summary.
type StatsService struct {
	engine   EngineStats
	board    BoardSize
	interval time.Duration
	logger   zerolog.Logger
	name     string

	last recommend.Stats
}

// NewStatsService creates the service. A non-positive interval uses one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsService(engine EngineStats, board BoardSize, interval time.Duration, logger zerolog.Logger) *StatsService {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &StatsService{
		engine:   engine,
		board:    board,
		interval: interval,
		logger:   logger.With().Str("service", "stats").Logger(),
		name:     "stats-service",
	}
}

// Serve publishes once immediately and then on every tick.
func (s *StatsService) Serve(ctx context.Context) error {
	s.publish()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.publish()
		}
	}
}

func (s *StatsService) publish() {
	size := s.board.Len()
	metrics.LeaderboardEntries.Set(float64(size))

	cur := s.engine.Stats()
	delta := cur.Requests - s.last.Requests
	s.last = cur

	// Idle intervals stay at debug.
	event := s.logger.Debug()
	if delta > 0 {
		event = s.logger.Info()
	}
	event.
		Int64("requests", cur.Requests).
		Int64("requests_delta", delta).
		Int64("similarity", cur.Similarity).
		Int64("domain_top", cur.DomainTop).
		Int64("boundary_priority", cur.BoundaryPriority).
		Int64("cache_hits", cur.CacheHits).
		Int64("cache_misses", cur.CacheMisses).
		Int("leaderboard_entries", size).
		Msg("engine stats")
}

// String implements fmt.Stringer for supervisor logs.
func (s *StatsService) String() string {
	return s.name
}
