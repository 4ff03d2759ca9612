// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// @title EcoBee API
// @version 1.0
// @description Sustainability action recommendations grounded in planetary boundaries
// @description
// @description ## Features
// @description
// @description - **Similar actions**: cosine similarity over precomputed action embeddings
// @description - **Domain winners**: the most feasible high-gap action per lifestyle domain
// @description - **Eco-score**: per-boundary scores from diet, mobility and fashion intake
// @description - **Leaderboard**: in-memory ranking of submitted scores
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Score submissions are additionally throttled per display name.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "meta": {
// @description     "timestamp": "2026-01-01T12:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/ecobee/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and runtime statistics
//
// @tag.name Catalog
// @tag.description Actions, domain winners, affinity graph and campus resources
//
// @tag.name Recommendations
// @tag.description Similarity and fallback recommendations
//
// @tag.name Leaderboard
// @tag.description Score submission and ranking
//
// @tag.name EcoScore
// @tag.description Boundary scoring from lifestyle intake
package main
