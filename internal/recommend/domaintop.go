// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package recommend

import (
	"github.com/tomtom215/ecobee/internal/catalog"
)

// TopActionPerDomain returns, for every domain in c, the action with the
// largest feasibility*boundary_gap. The first action in catalog order wins ties.
func TopActionPerDomain(c *catalog.Catalog) map[string]catalog.Action {
	winners := TopActionPerDomainOrdered(c)
	out := make(map[string]catalog.Action, len(winners))
	for _, a := range winners {
		out[a.Domain] = a
	}
	return out
}

// TopActionPerDomainOrdered returns the same winners as TopActionPerDomain,
// ordered by the first appearance of each domain in the catalog.
func TopActionPerDomainOrdered(c *catalog.Catalog) []catalog.Action {
	domains := c.Domains()
	pos := make(map[string]int, len(domains))
	for i, d := range domains {
		pos[d] = i
	}

	best := make([]catalog.Action, len(domains))
	seen := make([]bool, len(domains))
	for _, a := range c.Actions() {
		i := pos[a.Domain]
		// Strictly greater: an equal later action never displaces the incumbent.
		if !seen[i] || a.Priority() > best[i].Priority() {
			best[i] = a
			seen[i] = true
		}
	}
	return best
}

func domainTopScored(c *catalog.Catalog) []ScoredAction {
	winners := TopActionPerDomainOrdered(c)
	out := make([]ScoredAction, len(winners))
	for i, a := range winners {
		out[i] = ScoredAction{Action: a, Score: a.Priority()}
	}
	return out
}
