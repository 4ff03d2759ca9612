// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package catalog

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAction is returned when an action fails catalog validation.
var ErrInvalidAction = errors.New("invalid action")

// Planetary boundary names used in impact profiles.
const (
	BoundaryClimate        = "climate"
	BoundaryBiosphere      = "biosphere"
	BoundaryBiogeochemical = "biogeochemical"
	BoundaryFreshwater     = "freshwater"
	BoundaryAerosols       = "aerosols"
)

// Boundaries lists the planetary boundaries in reporting order.
var Boundaries = []string{
	BoundaryClimate,
	BoundaryBiosphere,
	BoundaryBiogeochemical,
	BoundaryFreshwater,
	BoundaryAerosols,
}

// Action is a candidate sustainability action.
type Action struct {
	// ID is the stable identifier, unique within a catalog.
	ID string `json:"id"`

	// Name is the human-readable label.
	Name string `json:"name"`

	// Domain groups substitutable actions (swap, repair, veggie, transport).
	Domain string `json:"domain"`

	// Feasibility is the ease of adoption, conventionally in [0,1].
	Feasibility float64 `json:"feasibility"`

	// BoundaryGap is the unmet environmental need the action addresses,
	// conventionally in [0,1].
	BoundaryGap float64 `json:"boundary_gap"`

	// Description explains what the action involves.
	Description string `json:"description,omitempty"`

	// Difficulty is easy, medium or hard.
	Difficulty string `json:"difficulty,omitempty"`

	// Cost is free, low, medium or high.
	Cost string `json:"cost,omitempty"`

	// Impact maps a boundary name to the percentage reduction (0-100)
	// the action achieves on it.
	Impact map[string]float64 `json:"impact,omitempty"`

	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty"`
}

// Priority is the product used by the domain-top selector.
func (a Action) Priority() float64 {
	return a.Feasibility * a.BoundaryGap
}

// Validate checks the invariants every catalog entry must hold.
func (a Action) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidAction)
	}
	if a.Domain == "" {
		return fmt.Errorf("%w: %s: empty domain", ErrInvalidAction, a.ID)
	}
	if !nonNegativeFinite(a.Feasibility) {
		return fmt.Errorf("%w: %s: feasibility %v", ErrInvalidAction, a.ID, a.Feasibility)
	}
	if !nonNegativeFinite(a.BoundaryGap) {
		return fmt.Errorf("%w: %s: boundary_gap %v", ErrInvalidAction, a.ID, a.BoundaryGap)
	}
	for boundary, pct := range a.Impact {
		if !nonNegativeFinite(pct) || pct > 100 {
			return fmt.Errorf("%w: %s: impact %s=%v", ErrInvalidAction, a.ID, boundary, pct)
		}
	}
	return nil
}

// clone returns a copy that shares no maps or slices with a.
// Clone returns a deep copy of a; the copy shares no map or slice with it.
func (a Action) Clone() Action {
	if a.Impact != nil {
		impact := make(map[string]float64, len(a.Impact))
		for k, v := range a.Impact {
			impact[k] = v
		}
		a.Impact = impact
	}
	if a.Tags != nil {
		a.Tags = append([]string(nil), a.Tags...)
	}
	return a
}

func nonNegativeFinite(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
