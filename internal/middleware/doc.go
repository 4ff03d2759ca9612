// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

/*
Package middleware provides HTTP middleware components for the API server.

All middleware has the chi signature func(http.Handler) http.Handler so it
composes with chi's own middleware in a single Use chain.

Key Components:

  - RequestID: accepts or generates X-Request-ID and stores it, plus a
    request-scoped zerolog logger, in the request context
  - PerformanceMonitor: sliding-window latency percentiles per route with
    slow-request warnings and a per-request access log line
  - PrometheusMetrics: request count, duration and in-flight instrumentation

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(perf.Middleware)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(corsOptions))
	r.Use(middleware.PrometheusMetrics)

Route Labels:

Metric and latency labels use the chi route pattern (for example
/api/v1/actions/{id}) once routing has resolved, so label cardinality is
bounded by the number of routes rather than the number of distinct paths.
Requests that match no route are labelled "unmatched".
*/
package middleware
