// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// Package recommend selects sustainability actions to present to a user.
//
// # Strategies
//
// The engine picks one of three rankings per request:
//
//   - Similarity: when a seed action has an embedding, the other catalog
//     actions are ranked by cosine similarity to it and the top N returned.
//     The seed is never part of its own result.
//   - Domain-top: without a usable seed, the action with the largest
//     feasibility*boundary_gap is chosen from every domain. The result has
//     one action per domain and is not truncated to N.
//   - Boundary priority: given per-boundary scores (0 worst, 100 best), actions
//     are ranked by how much they relieve the three weakest boundaries.
//
// # Determinism
//
// Every ranking uses a stable sort over catalog order, so equal scores always
// resolve to the action that appears first in the catalog. The catalog and
// embedding store are immutable after construction and injected into the
// engine; no package-level state is shared between engines.
//
// # Usage
//
//	cat := catalog.BuildCatalog()
//	store, err := embeddings.LoadFile("data/embeddings.json")
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, store, logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{SeedID: "a1", N: 4})
//
// Rerankers such as reranking.MMR are registered with Engine.RegisterReranker
// and run on similarity results only.
package recommend
