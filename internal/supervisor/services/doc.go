// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

/*
Package services provides suture.Service wrappers for EcoBee components.

Each wrapper implements suture.Service (Serve(ctx) error) and fmt.Stringer so
supervisor events name the service.

  - HTTPServerService turns http.Server's blocking ListenAndServe into a
    context-aware Serve with a bounded graceful Shutdown. An optional drain
    hook runs first so readiness probes fail before connections close.
  - StatsService periodically publishes engine counters and the leaderboard
    size as Prometheus gauges and logs a summary line.

Returning ctx.Err() on cancellation tells suture the stop was requested; any
other error counts as a failure and triggers a restart with backoff.
*/
package services
