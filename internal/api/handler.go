// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/tomtom215/ecobee/internal/leaderboard"
	"github.com/tomtom215/ecobee/internal/middleware"
	"github.com/tomtom215/ecobee/internal/recommend"
)

// Handler serves the EcoBee API over injected domain instances.
type Handler struct {
	engine      *recommend.Engine
	leaderboard *leaderboard.Leaderboard
	throttle    *NameThrottle
	perf        *middleware.PerformanceMonitor
	version     string
	startTime   time.Time
	ready       atomic.Bool
}

// HandlerDeps are the collaborators a Handler needs. Engine and Leaderboard
// are required.
type HandlerDeps struct {
	Engine      *recommend.Engine
	Leaderboard *leaderboard.Leaderboard
	Throttle    *NameThrottle
	Performance *middleware.PerformanceMonitor
	Version     string
}

// NewHandler creates a handler. It starts in the ready state.
//
//nolint:gocritic // hugeParam: deps passed by value for immutability
func NewHandler(deps HandlerDeps) (*Handler, error) {
	if deps.Engine == nil {
		return nil, errors.New("api: engine is required")
	}
	if deps.Leaderboard == nil {
		return nil, errors.New("api: leaderboard is required")
	}
	if deps.Performance == nil {
		deps.Performance = middleware.NewPerformanceMonitor(1000, 0)
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}

	h := &Handler{
		engine:      deps.Engine,
		leaderboard: deps.Leaderboard,
		throttle:    deps.Throttle,
		perf:        deps.Performance,
		version:     deps.Version,
		startTime:   time.Now(),
	}
	h.ready.Store(true)
	return h, nil
}

// SetReady toggles the readiness probe, e.g. during shutdown.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Performance returns the monitor used for request latency tracking.
func (h *Handler) Performance() *middleware.PerformanceMonitor {
	return h.perf
}
