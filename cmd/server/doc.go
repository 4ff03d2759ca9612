// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// Package main is the entry point for the EcoBee recommendation server.
//
// EcoBee suggests lifestyle actions that relieve pressure on planetary
// boundaries. It serves similarity recommendations from a precomputed
// embedding table, the best action of every domain when no seed is given,
// a per-user eco-score and an in-memory leaderboard.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Embeddings: the id->vector table is loaded and validated; a bad file is fatal
//  3. Catalog: the seed action catalog and its affinity graph
//  4. Engine: recommendation engine with optional ranking cache and MMR reranking
//  5. Leaderboard: in-memory, optionally capped
//  6. HTTP Server: chi router with Swagger documentation
//  7. Supervisor: suture tree running the HTTP server and stats publisher
//
// # Configuration
//
// Common environment variables:
//   - HTTP_HOST, HTTP_PORT: listen address (default 0.0.0.0:8080)
//   - EMBEDDINGS_PATH: embedding table (default data/embeddings.json)
//   - LOG_LEVEL, LOG_FORMAT: zerolog level and json|console output
//   - LEADERBOARD_CAPACITY: keep only the best N entries (0 keeps all)
//   - CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW
//
// # Signal Handling
//
// SIGINT and SIGTERM mark the server not ready, drain in-flight requests
// within HTTP_SHUTDOWN_TIMEOUT and stop the supervisor tree.
//
// # Example Usage
//
//	export EMBEDDINGS_PATH=./data/embeddings.json
//	export LOG_FORMAT=console
//	./ecobee
//
// Swagger documentation is available at /swagger/index.html.
package main
