// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// Package reranking implements post-processing of similarity rankings.
//
// Rerankers run after the embedding ranker and reorder its candidates:
//
//	Ranker (cosine) -> candidates (2N) -> Rerankers -> top N
//
// # Maximal Marginal Relevance
//
// MMR iteratively selects actions that are relevant to the seed and
// dissimilar to the actions already selected:
//
//	MMR = argmax[lambda * score(i) - (1-lambda) * max sim(i, s) for s in selected]
//
// Similarity between two actions is injected as a function of their ids,
// normally the engine's embedding cosine. A lambda of 1.0 keeps the ranker's
// order unchanged.
//
// Usage:
//
//	mmr := reranking.NewMMR(0.7, engine.Similarity)
//	engine.RegisterReranker(mmr)
//
// Rerankers hold no per-request state and are safe for concurrent use.
package reranking
