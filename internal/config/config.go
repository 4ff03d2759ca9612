// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Logging     LoggingConfig     `koanf:"logging"`
	Recommend   RecommendConfig   `koanf:"recommend"`
	Leaderboard LeaderboardConfig `koanf:"leaderboard"`
	Security    SecurityConfig    `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// EmbeddingsPath is the JSON id->vector table loaded at startup.
	EmbeddingsPath string `koanf:"embeddings_path"`

	DefaultK int `koanf:"default_k"`
	MaxK     int `koanf:"max_k"`

	CacheEnabled bool `koanf:"cache_enabled"`
	CacheSize    int  `koanf:"cache_size"`

	// DiversityEnabled registers MMR reranking of similarity results.
	DiversityEnabled bool    `koanf:"diversity_enabled"`
	DiversityLambda  float64 `koanf:"diversity_lambda"`
}

// LeaderboardConfig holds leaderboard retention and submission throttling.
type LeaderboardConfig struct {
	// Capacity keeps only the best N entries. 0 means unbounded.
	Capacity int `koanf:"capacity"`

	// SubmitBurst and SubmitInterval throttle submissions per display name.
	SubmitBurst    int           `koanf:"submit_burst"`
	SubmitInterval time.Duration `koanf:"submit_interval"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in that order of precedence, and validates the result.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// String summarises the configuration for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("server=%s log=%s/%s embeddings=%s k=%d/%d leaderboard_capacity=%d",
		c.Server.Addr(), c.Logging.Level, c.Logging.Format,
		c.Recommend.EmbeddingsPath, c.Recommend.DefaultK, c.Recommend.MaxK,
		c.Leaderboard.Capacity)
}
