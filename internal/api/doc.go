// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

/*
Package api provides the HTTP interface of the EcoBee server.

Routing uses chi. Every JSON endpoint answers with the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "VALIDATION_ERROR", "message": "...", "details": {...}},
	  "meta": {"timestamp": "...", "request_id": "...", "duration_ms": 0}
	}

data is omitted on error and error is omitted on success.

# Endpoints

	GET  /api/v1/recommend?seed_id=&n=   similarity ranking or domain-top fallback
	GET  /api/v1/actions?domain=         catalog in order
	GET  /api/v1/actions/{id}            action details (404 when unknown)
	GET  /api/v1/domains/top             best action per domain
	GET  /api/v1/graph                   affinity graph adjacency
	GET  /api/v1/resources?action_id=    campus resources
	GET  /api/v1/stats                   engine counters and endpoint latency
	GET  /api/v1/leaderboard?limit=      sorted leaderboard
	POST /api/v1/leaderboard             submit {name, score}
	POST /api/v1/ecoscore                score an intake and recommend actions
	GET  /health/live, /health/ready     probes
	GET  /metrics                        Prometheus
	GET  /swagger/*                      Swagger UI

Unversioned routes GET /api/leaderboard, POST /api/submit-score and
GET /api/recommend?seedId= write bare JSON without the envelope. Errors on
these routes are {"error": message}.

# Error Codes

  - VALIDATION_ERROR (400): malformed body, bad query parameter, invalid submission
  - NOT_FOUND (404): unknown action or route
  - METHOD_NOT_ALLOWED (405)
  - RATE_LIMITED (429): per-IP limit or per-name submission throttle
  - INTERNAL_ERROR (500): details are logged, never returned
  - SERVICE_UNAVAILABLE (503): readiness probe while draining

# Rate Limiting

/api routes are limited per client IP with go-chi/httprate. Leaderboard
submissions are additionally throttled per display name with a token bucket
(golang.org/x/time/rate), see NameThrottle.
*/
package api
