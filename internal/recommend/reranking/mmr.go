// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package reranking

import (
	"context"
	"math"

	"github.com/tomtom215/ecobee/internal/recommend"
)

// maxRerankSize bounds the similarity matrix; k is also bounded by len(items).
const maxRerankSize = 1000

// SimilarityFunc returns the similarity of two actions by id, in [-1, 1].
type SimilarityFunc func(a, b string) float64

// MMR implements Maximal Marginal Relevance reranking.
//
// Reference:
// Carbonell, J., & Goldstein, J. (1998). "The Use of MMR, Diversity-Based
// Reranking for Reordering Documents and Producing Summaries." SIGIR 1998.
type MMR struct {
	// lambda balances relevance vs. diversity (0.0 to 1.0)
	lambda float64
	sim    SimilarityFunc
}

// NewMMR creates an MMR reranker. lambda is clamped to [0, 1]. A nil sim
// treats every pair as dissimilar, which reduces MMR to relevance order.
func NewMMR(lambda float64, sim SimilarityFunc) *MMR {
	if lambda < 0 || math.IsNaN(lambda) {
		lambda = 0
	}
	if lambda > 1 {
		lambda = 1
	}
	if sim == nil {
		sim = func(string, string) float64 { return 0 }
	}
	return &MMR{lambda: lambda, sim: sim}
}

// Name returns the reranker identifier.
func (m *MMR) Name() string {
	return "mmr"
}

// Lambda returns the relevance weight.
func (m *MMR) Lambda() float64 {
	return m.lambda
}

// Rerank selects up to k items from items using MMR. The first pick is
// always the most relevant item; ties go to the earlier item.
//
//nolint:gocritic // rangeValCopy: ScoredAction passed by value in range, acceptable for clarity
func (m *MMR) Rerank(ctx context.Context, items []recommend.ScoredAction, k int) []recommend.ScoredAction {
	if len(items) == 0 || k <= 0 {
		return items
	}

	if k > maxRerankSize {
		k = maxRerankSize
	}
	if k > len(items) {
		k = len(items)
	}
	if len(items) > maxRerankSize {
		items = items[:maxRerankSize]
	}

	if m.lambda >= 1.0 {
		return items[:k]
	}

	similarities := m.buildSimilarityMatrix(items)

	selected := make([]recommend.ScoredAction, 0, k)
	picked := make([]bool, len(items))
	var order []int

	for len(selected) < k {
		if ctx.Err() != nil {
			break
		}

		bestIdx := -1
		bestMMR := math.Inf(-1)

		for i, item := range items {
			if picked[i] {
				continue
			}

			maxSim := 0.0
			if len(order) > 0 {
				maxSim = math.Inf(-1)
				for _, j := range order {
					if s := similarities[i][j]; s > maxSim {
						maxSim = s
					}
				}
			}

			score := m.lambda*item.Score - (1-m.lambda)*maxSim
			if score > bestMMR {
				bestMMR = score
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			break
		}

		selected = append(selected, items[bestIdx])
		picked[bestIdx] = true
		order = append(order, bestIdx)
	}

	return selected
}

// buildSimilarityMatrix computes pairwise similarity between candidates.
func (m *MMR) buildSimilarityMatrix(items []recommend.ScoredAction) [][]float64 {
	n := len(items)
	similarities := make([][]float64, n)
	for i := range similarities {
		similarities[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := m.sim(items[i].Action.ID, items[j].Action.ID)
			similarities[i][j] = sim
			similarities[j][i] = sim
		}
	}

	return similarities
}

// Ensure MMR implements the interface.
var _ recommend.Reranker = (*MMR)(nil)
