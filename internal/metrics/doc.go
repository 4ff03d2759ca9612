// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto and
exposed by promhttp on /metrics.

# Metric Families

API:
  - ecobee_api_requests_total{method,endpoint,status_code}
  - ecobee_api_request_duration_seconds{method,endpoint}
  - ecobee_api_active_requests
  - ecobee_api_rate_limit_hits_total{limiter}

Recommendations:
  - ecobee_recommendations_total{strategy}
  - ecobee_recommendation_items (histogram of result sizes)
  - ecobee_ranking_cache_hits_total, ecobee_ranking_cache_misses_total

Leaderboard and scoring:
  - ecobee_leaderboard_submissions_total{result}
  - ecobee_leaderboard_entries
  - ecobee_ecoscore_computations_total{result}
  - ecobee_ecoscore_composite (histogram)

System:
  - ecobee_app_info{version,go_version}
  - ecobee_embeddings_vectors, ecobee_embeddings_dimensions

Endpoint labels use chi route patterns, not raw paths, to bound cardinality.
*/
package metrics
