// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/config"
	"github.com/tomtom215/ecobee/internal/embeddings"
	"github.com/tomtom215/ecobee/internal/metrics"
	"github.com/tomtom215/ecobee/internal/recommend"
	"github.com/tomtom215/ecobee/internal/recommend/reranking"
)

// RecommendComponents holds the recommendation data layer.
type RecommendComponents struct {
	Catalog    *catalog.Catalog
	Embeddings *embeddings.Store
	Engine     *recommend.Engine
}

// initRecommend loads the embedding table and builds the engine over the
// seed catalog. A missing or malformed embedding file is returned as an
// *embeddings.LoadError.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*RecommendComponents, error) {
	store, err := embeddings.LoadFile(cfg.Recommend.EmbeddingsPath)
	if err != nil {
		return nil, err
	}
	metrics.SetEmbeddingInfo(store.Len(), store.Dim())

	cat := catalog.BuildCatalog()
	if missing := store.Coverage(cat.IDs()); len(missing) > 0 {
		// Those seeds fall back to the domain winners.
		logger.Warn().
			Strs("actions", missing).
			Msg("catalog actions without embeddings")
	}

	logger.Info().
		Str("path", store.Source()).
		Int("vectors", store.Len()).
		Int("dimensions", store.Dim()).
		Int("actions", cat.Len()).
		Msg("embeddings loaded")

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), cat, store, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	registerRerankers(engine, cfg, logger)

	return &RecommendComponents{
		Catalog:    cat,
		Embeddings: store,
		Engine:     engine,
	}, nil
}

// buildEngineConfig creates the engine configuration from app config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultK: cfg.Recommend.DefaultK,
			MaxK:     cfg.Recommend.MaxK,
		},
		Diversity: recommend.DiversityConfig{
			Enabled: cfg.Recommend.DiversityEnabled,
			Lambda:  cfg.Recommend.DiversityLambda,
		},
		Cache: recommend.CacheConfig{
			Enabled: cfg.Recommend.CacheEnabled,
			Size:    cfg.Recommend.CacheSize,
		},
	}
}

// registerRerankers registers the MMR reranker when diversity is enabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func registerRerankers(engine *recommend.Engine, cfg *config.Config, logger zerolog.Logger) {
	if !cfg.Recommend.DiversityEnabled {
		return
	}
	engine.RegisterReranker(reranking.NewMMR(cfg.Recommend.DiversityLambda, engine.Similarity))
	logger.Debug().Float64("lambda", cfg.Recommend.DiversityLambda).Msg("registered MMR reranker")
}
