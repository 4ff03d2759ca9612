// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package recommend

import (
	"sort"

	"github.com/tomtom215/ecobee/internal/catalog"
)

// priorityBoundaries is how many of the weakest boundaries drive ranking.
const priorityBoundaries = 3

// impactWeight scales the boundary fit term against feasibility*gap.
const impactWeight = 10.0

// WeakestBoundaries returns up to k boundaries with the lowest scores
// (0 worst, 100 best). Boundaries missing from scores are ignored. Ties
// keep the order of catalog.Boundaries.
func WeakestBoundaries(scores map[string]float64, k int) []string {
	names := make([]string, 0, len(catalog.Boundaries))
	for _, b := range catalog.Boundaries {
		if _, ok := scores[b]; ok {
			names = append(names, b)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return scores[names[i]] < scores[names[j]]
	})
	if len(names) > k {
		names = names[:k]
	}
	return names
}

// RankByBoundaryScores ranks the catalog for a user whose per-boundary scores
// are given. Each action scores
//
//	sum over the weakest boundaries of (1 - score/100) * (impact/100) * 10
//	+ feasibility * boundary_gap
//
// and the top n are returned, ties in catalog order.
func RankByBoundaryScores(c *catalog.Catalog, scores map[string]float64, n int) []ScoredAction {
	if n <= 0 {
		return []ScoredAction{}
	}

	weakest := WeakestBoundaries(scores, priorityBoundaries)

	ranked := make([]ScoredAction, 0, c.Len())
	for _, a := range c.Actions() {
		s := a.Priority()
		for _, b := range weakest {
			gap := 1 - clampPercent(scores[b])/100
			s += gap * (clampPercent(a.Impact[b]) / 100) * impactWeight
		}
		ranked = append(ranked, ScoredAction{Action: a, Score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
