// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

/*
Package config provides centralized configuration management for EcoBee.

# Configuration Sources

Configuration is layered with koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file, from CONFIG_PATH or the first of DefaultConfigPaths
 3. Environment variables, mapped explicitly by envTransformFunc

Unmapped environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT: default 15s
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include file:line (default: false)

Recommendations:
  - EMBEDDINGS_PATH: embedding table (default: data/embeddings.json)
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K: default 4 and 20
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_SIZE: default true and 256
  - RECOMMEND_DIVERSITY_ENABLED, RECOMMEND_DIVERSITY_LAMBDA: default false and 0.7

Leaderboard:
  - LEADERBOARD_CAPACITY: keep the best N entries, 0 for unbounded (default: 0)
  - LEADERBOARD_SUBMIT_BURST: submissions allowed per name at once (default: 3)
  - LEADERBOARD_SUBMIT_INTERVAL: one more submission per interval (default: 10s)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: per-IP limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: turn the per-IP limit off (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Config is immutable after Load and safe for concurrent reads.
*/
package config
