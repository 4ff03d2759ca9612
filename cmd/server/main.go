// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/ecobee/docs" // Import generated swagger docs
	"github.com/tomtom215/ecobee/internal/api"
	"github.com/tomtom215/ecobee/internal/config"
	"github.com/tomtom215/ecobee/internal/embeddings"
	"github.com/tomtom215/ecobee/internal/leaderboard"
	"github.com/tomtom215/ecobee/internal/logging"
	"github.com/tomtom215/ecobee/internal/metrics"
	"github.com/tomtom215/ecobee/internal/middleware"
	"github.com/tomtom215/ecobee/internal/supervisor"
	"github.com/tomtom215/ecobee/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	perfWindow        = 1000
	statsInterval     = time.Minute
	serverIdleTimeout = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("config", cfg.String()).
		Msg("Starting EcoBee with supervisor tree")

	rc, err := initRecommend(cfg, logging.WithComponent("recommend"))
	if err != nil {
		var loadErr *embeddings.LoadError
		if errors.As(err, &loadErr) {
			logging.Fatal().
				Str("source", loadErr.Source).
				Str("id", loadErr.ID).
				Err(loadErr.Err).
				Msg("Failed to load embeddings")
		}
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	board := leaderboard.New(leaderboard.WithCapacity(cfg.Leaderboard.Capacity))
	if cfg.Leaderboard.Capacity > 0 {
		logging.Info().Int("capacity", cfg.Leaderboard.Capacity).Msg("Leaderboard capped")
	}

	handler, err := api.NewHandler(api.HandlerDeps{
		Engine:      rc.Engine,
		Leaderboard: board,
		Throttle:    api.NewNameThrottle(cfg.Leaderboard.SubmitBurst, cfg.Leaderboard.SubmitInterval),
		Performance: middleware.NewPerformanceMonitor(perfWindow, middleware.DefaultSlowThreshold),
		Version:     version,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(chiMiddlewareConfig(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       serverIdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog needs slog; events are bridged into zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewStatsService(rc.Engine, board, statsInterval, logging.WithComponent("stats")))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout,
		services.WithDrainHook(func() { handler.SetReady(false) }),
		services.WithHTTPLogger(logging.Logger()),
	))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// chiMiddlewareConfig maps security settings onto the router middleware.
func chiMiddlewareConfig(sec *config.SecurityConfig) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	if len(sec.CORSOrigins) > 0 {
		mw.CORSAllowedOrigins = sec.CORSOrigins
	}
	if sec.RateLimitReqs > 0 {
		mw.RateLimitRequests = sec.RateLimitReqs
	}
	if sec.RateLimitWindow > 0 {
		mw.RateLimitWindow = sec.RateLimitWindow
	}
	mw.RateLimitDisabled = sec.RateLimitDisabled
	return mw
}
