// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits bounds result sizes.
	Limits LimitsConfig `json:"limits"`

	// Diversity controls optional MMR reranking of similarity results.
	Diversity DiversityConfig `json:"diversity"`

	// Cache controls the similarity ranking cache.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is used when a request does not set N.
	// Default: 4.
	DefaultK int `json:"default_k"`

	// MaxK caps N.
	// Default: 20.
	MaxK int `json:"max_k"`
}

// DiversityConfig contains parameters for diversity reranking.
type DiversityConfig struct {
	// Enabled registers the MMR reranker.
	Enabled bool `json:"enabled"`

	// Lambda balances relevance (1.0) against diversity (0.0).
	// Default: 1.0.
	Lambda float64 `json:"lambda"`
}

// CacheConfig contains ranking cache parameters.
type CacheConfig struct {
	// Enabled turns on the LRU cache keyed by (seed, n).
	Enabled bool `json:"enabled"`

	// Size is the maximum number of cached rankings.
	// Default: 256.
	Size int `json:"size"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultK: 4,
			MaxK:     20,
		},
		Diversity: DiversityConfig{
			Enabled: false,
			Lambda:  1.0,
		},
		Cache: CacheConfig{
			Enabled: true,
			Size:    256,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= limits.default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Diversity.Lambda < 0 || c.Diversity.Lambda > 1 {
		return fmt.Errorf("diversity.lambda must be in [0, 1], got %f", c.Diversity.Lambda)
	}
	if c.Cache.Enabled && c.Cache.Size < 1 {
		return fmt.Errorf("cache.size must be positive when cache is enabled, got %d", c.Cache.Size)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// Nested structs hold only value types.
	cp := *c
	return &cp
}
