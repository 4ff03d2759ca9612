// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

/*
Package supervisor provides process supervision for the EcoBee server using suture v4.

Services are organized into two layers under a root supervisor:

	RootSupervisor ("ecobee")
	├── DataSupervisor ("data-layer")
	│   └── StatsService (publishes engine and leaderboard gauges)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in the data layer never takes down the HTTP server. Crashed services
are restarted with suture's failure decay and backoff, and cancelling the
context passed to Serve shuts the whole tree down within ShutdownTimeout.

Supervisor events (restarts, backoff, stop timeouts) are logged through
sutureslog, which takes a *slog.Logger. Pass logging.NewSlogLogger() so
they end up in the same zerolog stream as everything else:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewStatsService(engine, board, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}
*/
package supervisor
