// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// Package catalog holds the fixed registry of sustainability actions, the
// same-domain affinity graph derived from it and the campus resources that
// support individual actions.
//
// A Catalog is built once at startup and never mutated, so it is safe to
// share between goroutines without locking. Accessors return copies.
package catalog

import (
	"fmt"
)

// Catalog is an ordered, immutable set of actions.
type Catalog struct {
	actions []Action
	index   map[string]int
	domains []string
}

// New builds a catalog from actions, preserving their order.
// It rejects duplicate ids and actions that fail Validate.
func New(actions []Action) (*Catalog, error) {
	c := &Catalog{
		actions: make([]Action, 0, len(actions)),
		index:   make(map[string]int, len(actions)),
	}

	seenDomain := make(map[string]struct{})
	for _, a := range actions {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidAction, a.ID)
		}
		c.index[a.ID] = len(c.actions)
		c.actions = append(c.actions, a.Clone())

		if _, ok := seenDomain[a.Domain]; !ok {
			seenDomain[a.Domain] = struct{}{}
			c.domains = append(c.domains, a.Domain)
		}
	}

	return c, nil
}

// BuildCatalog returns the seed catalog compiled into the binary.
func BuildCatalog() *Catalog {
	c, err := New(seedActions())
	if err != nil {
		// The seed list is static; failing here is a programming error.
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	return c
}

// Actions returns every action in catalog order.
func (c *Catalog) Actions() []Action {
	out := make([]Action, len(c.actions))
	for i, a := range c.actions {
		out[i] = a.Clone()
	}
	return out
}

// Get returns the action with the given id.
func (c *Catalog) Get(id string) (Action, bool) {
	i, ok := c.index[id]
	if !ok {
		return Action{}, false
	}
	return c.actions[i].Clone(), true
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Index returns the catalog position of id, or -1.
func (c *Catalog) Index(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Len returns the number of actions.
func (c *Catalog) Len() int {
	return len(c.actions)
}

// IDs returns the action ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.actions))
	for i, a := range c.actions {
		ids[i] = a.ID
	}
	return ids
}

// Domains returns the distinct domains in first-seen order.
func (c *Catalog) Domains() []string {
	return append([]string(nil), c.domains...)
}

// ByDomain returns the actions of one domain in catalog order.
func (c *Catalog) ByDomain(domain string) []Action {
	var out []Action
	for _, a := range c.actions {
		if a.Domain == domain {
			out = append(out, a.Clone())
		}
	}
	return out
}

func seedActions() []Action {
	return []Action{
		{
			ID:          "a1",
			Name:        "Campus Swap Event",
			Domain:      "swap",
			Feasibility: 0.9,
			BoundaryGap: 0.7,
			Description: "Swap clothes and household items at a campus exchange instead of buying new",
			Difficulty:  "easy",
			Cost:        "free",
			Impact: map[string]float64{
				BoundaryClimate:    70,
				BoundaryFreshwater: 80,
				BoundaryAerosols:   60,
			},
			Tags: []string{"swap", "community", "social"},
		},
		{
			ID:          "a2",
			Name:        "Repair Café",
			Domain:      "repair",
			Feasibility: 0.8,
			BoundaryGap: 0.8,
			Description: "Bring damaged clothing, electronics or bikes to a volunteer repair session",
			Difficulty:  "medium",
			Cost:        "free",
			Impact: map[string]float64{
				BoundaryClimate:    80,
				BoundaryFreshwater: 90,
				BoundaryAerosols:   70,
			},
			Tags: []string{"repair", "diy", "skills"},
		},
		{
			ID:          "a3",
			Name:        "Veggie Meal Option",
			Domain:      "veggie",
			Feasibility: 0.6,
			BoundaryGap: 0.9,
			Description: "Replace meat meals with plant-based options a few times a week",
			Difficulty:  "easy",
			Cost:        "free",
			Impact: map[string]float64{
				BoundaryClimate:        25,
				BoundaryBiosphere:      20,
				BoundaryBiogeochemical: 30,
				BoundaryFreshwater:     15,
				BoundaryAerosols:       10,
			},
			Tags: []string{"diet", "health", "climate"},
		},
		{
			ID:          "a4",
			Name:        "Bike Share",
			Domain:      "transport",
			Feasibility: 0.7,
			BoundaryGap: 0.6,
			Description: "Use the campus bike share for short trips instead of driving",
			Difficulty:  "easy",
			Cost:        "low",
			Impact: map[string]float64{
				BoundaryClimate:   90,
				BoundaryAerosols:  85,
				BoundaryBiosphere: 30,
			},
			Tags: []string{"transport", "bike", "zero-emission"},
		},
	}
}
