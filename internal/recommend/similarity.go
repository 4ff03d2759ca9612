// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package recommend

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/embeddings"
)

// Cosine returns dot(a,b) / (|a|*|b|).
// Vectors of different or zero length, and zero-magnitude vectors, score 0
// rather than NaN. Both vectors are normalised before the dot product, so
// finite inputs of any magnitude give a finite result in [-1, 1].
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	return unitCosine(embeddings.UnitVector(a), embeddings.UnitVector(b))
}

// unitCosine is the dot product of two unit (or zero) vectors, clamped.
func unitCosine(a, b []float64) float64 {
	sim := floats.Dot(a, b)
	switch {
	case math.IsNaN(sim):
		return 0
	case sim > 1:
		return 1
	case sim < -1:
		return -1
	default:
		return sim
	}
}

// Ranker ranks catalog actions by embedding similarity to a seed action.
// It holds only immutable state and is safe for concurrent use.
type Ranker struct {
	catalog *catalog.Catalog
	store   *embeddings.Store
}

// NewRanker creates a ranker. A nil store makes every seed unresolvable.
func NewRanker(c *catalog.Catalog, store *embeddings.Store) *Ranker {
	return &Ranker{catalog: c, store: store}
}

// CanRank reports whether seedID has an embedding.
func (r *Ranker) CanRank(seedID string) bool {
	return seedID != "" && r.store != nil && r.store.Has(seedID)
}

// RankBySimilarity returns up to n catalog actions most similar to seedID.
// The seed itself is never included. Equal scores keep catalog order.
// ok is false when the seed has no embedding; callers fall back to
// another strategy in that case.
func (r *Ranker) RankBySimilarity(seedID string, n int) (actions []catalog.Action, ok bool) {
	scored, ok := r.rank(seedID, n)
	if !ok {
		return nil, false
	}
	actions = make([]catalog.Action, len(scored))
	for i, s := range scored {
		actions[i] = s.Action
	}
	return actions, true
}

// rank is RankBySimilarity with scores attached.
func (r *Ranker) rank(seedID string, n int) ([]ScoredAction, bool) {
	if !r.CanRank(seedID) {
		return nil, false
	}
	if n <= 0 {
		return []ScoredAction{}, true
	}

	seed, _ := r.store.Unit(seedID)

	candidates := make([]ScoredAction, 0, r.catalog.Len())
	for _, a := range r.catalog.Actions() {
		if a.ID == seedID {
			continue
		}
		vec, ok := r.store.Unit(a.ID)
		if !ok {
			continue
		}
		candidates = append(candidates, ScoredAction{
			Action: a,
			Score:  unitCosine(seed, vec),
		})
	}

	// Candidates are in catalog order, so a stable sort keeps ties deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates, true
}

// Similarity returns the cosine similarity of two actions' embeddings,
// or 0 when either has none.
func (r *Ranker) Similarity(a, b string) float64 {
	if r.store == nil {
		return 0
	}
	va, ok := r.store.Unit(a)
	if !ok {
		return 0
	}
	vb, ok := r.store.Unit(b)
	if !ok {
		return 0
	}
	return unitCosine(va, vb)
}
