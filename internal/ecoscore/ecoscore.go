// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// Package ecoscore turns quiz answers into per-boundary scores.
//
// Each answered item is looked up in an embedded factor table of per-unit
// pressures on the five planetary boundaries. Pressures are summed per
// boundary and normalised against a fixed limit:
//
//	score = max(0, min(100, 100 * (1 - total/limit)))
//
// so 100 is best and 0 means the limit was reached. The composite is the
// arithmetic mean of the five boundary scores.
package ecoscore

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/validation"
)

//go:embed factors.json
var embeddedFactors []byte

// Limits are the per-boundary totals that map to a score of 0.
var Limits = map[string]float64{
	catalog.BoundaryClimate:        50,  // kg CO2e
	catalog.BoundaryBiosphere:      100, // m²·yr land use
	catalog.BoundaryBiogeochemical: 10,  // kg N/P
	catalog.BoundaryFreshwater:     500, // m³
	catalog.BoundaryAerosols:       0.1, // kg PM2.5e
}

// factorTable is section -> item -> boundary -> per-unit pressure.
type factorTable map[string]map[string]map[string]float64

var factors = mustLoadFactors(embeddedFactors)

func mustLoadFactors(data []byte) factorTable {
	var t factorTable
	if err := json.Unmarshal(data, &t); err != nil {
		panic(fmt.Sprintf("ecoscore: invalid embedded factor table: %v", err))
	}
	return t
}

// Intake holds quiz answers: item name -> quantity per category.
// Diet is in servings, mobility in km and fashion in items bought.
type Intake struct {
	Diet     map[string]float64 `json:"diet,omitempty" validate:"finitemap,max=50"`
	Mobility map[string]float64 `json:"mobility,omitempty" validate:"finitemap,max=50"`
	Fashion  map[string]float64 `json:"fashion,omitempty" validate:"finitemap,max=50"`
}

func (in *Intake) categories() []struct {
	name  string
	items map[string]float64
} {
	return []struct {
		name  string
		items map[string]float64
	}{
		{CategoryDiet, in.Diet},
		{CategoryMobility, in.Mobility},
		{CategoryFashion, in.Fashion},
	}
}

// UnknownItem is an answer with no factor table entry.
type UnknownItem struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}

// Result is the scored intake.
type Result struct {
	// Boundaries holds the 0..100 score per boundary, 100 best.
	Boundaries map[string]float64 `json:"boundaries"`

	// Totals holds the summed raw pressure per boundary.
	Totals map[string]float64 `json:"totals"`

	// Composite is the mean of Boundaries.
	Composite float64 `json:"composite"`

	// Unknown lists answers that were skipped, sorted by category then item.
	Unknown []UnknownItem `json:"unknown"`
}

// Score validates and scores an intake. Zero quantities are ignored.
//
//nolint:gocritic // hugeParam: Intake passed by value for immutability
func Score(in Intake) (Result, error) {
	if verr := validation.ValidateStruct(&in); verr != nil {
		return Result{}, verr
	}

	totals := make(map[string]float64, len(catalog.Boundaries))
	for _, b := range catalog.Boundaries {
		totals[b] = 0
	}
	unknown := []UnknownItem{}

	for _, cat := range in.categories() {
		section := factors[factorCategory[cat.name]]
		for item, qty := range cat.items {
			if qty == 0 {
				continue
			}
			impacts, ok := section[resolve(cat.name, item)]
			if !ok {
				unknown = append(unknown, UnknownItem{Category: cat.name, Item: item})
				continue
			}
			for b, v := range impacts {
				if _, tracked := totals[b]; tracked {
					totals[b] += v * qty
				}
			}
		}
	}

	sort.Slice(unknown, func(i, j int) bool {
		if unknown[i].Category != unknown[j].Category {
			return unknown[i].Category < unknown[j].Category
		}
		return unknown[i].Item < unknown[j].Item
	})

	scores := make(map[string]float64, len(totals))
	var sum float64
	for _, b := range catalog.Boundaries {
		s := Normalise(totals[b], Limits[b])
		scores[b] = s
		sum += s
	}

	return Result{
		Boundaries: scores,
		Totals:     totals,
		Composite:  sum / float64(len(catalog.Boundaries)),
		Unknown:    unknown,
	}, nil
}

// Normalise maps a raw total to a 0..100 score against limit.
func Normalise(total, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	s := 100 * (1 - total/limit)
	switch {
	case s < 0:
		return 0
	case s > 100:
		return 100
	default:
		return s
	}
}

// Known reports whether item resolves to a factor table entry in category.
func Known(category, item string) bool {
	_, ok := factors[factorCategory[category]][resolve(category, item)]
	return ok
}

// Items returns the factor table keys for category, sorted.
func Items(category string) []string {
	section := factors[factorCategory[category]]
	out := make([]string, 0, len(section))
	for k := range section {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
