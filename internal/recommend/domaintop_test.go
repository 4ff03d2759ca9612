// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package recommend

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/tomtom215/ecobee/internal/catalog"
)

func TestTopActionPerDomain_SeedCatalog(t *testing.T) {
	c := catalog.BuildCatalog()

	got := TopActionPerDomain(c)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for _, a := range c.Actions() {
		w, ok := got[a.Domain]
		if !ok {
			t.Errorf("domain %q missing", a.Domain)
			continue
		}
		if w.ID != a.ID {
			t.Errorf("domain %q winner = %s, want %s", a.Domain, w.ID, a.ID)
		}
	}

	ordered := TopActionPerDomainOrdered(c)
	want := []string{"a1", "a2", "a3", "a4"}
	for i, a := range ordered {
		if a.ID != want[i] {
			t.Errorf("ordered[%d] = %s, want %s", i, a.ID, want[i])
		}
	}
}

func TestTopActionPerDomain_Ties(t *testing.T) {
	c := mustCatalog(t,
		action("x1", "swap", 0.5, 0.5),
		action("x2", "swap", 0.5, 0.5),
		action("x3", "repair", 0.5, 0.2),
		action("x4", "repair", 0.4, 0.5),
		action("x5", "repair", 0.5, 0.4),
	)

	got := TopActionPerDomain(c)
	tests := []struct {
		domain string
		want   string
	}{
		{"swap", "x1"},
		{"repair", "x4"},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			if got[tt.domain].ID != tt.want {
				t.Errorf("winner = %s, want %s", got[tt.domain].ID, tt.want)
			}
		})
	}
}

func TestTopActionPerDomain_EmptyCatalog(t *testing.T) {
	c := mustCatalog(t)
	if got := TopActionPerDomain(c); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if got := domainTopScored(c); len(got) != 0 {
		t.Errorf("scored len = %d, want 0", len(got))
	}
}

// TestTopActionPerDomain_BruteForce checks the selector against an
// exhaustive scan on random catalogs, including coarse values that tie often.
func TestTopActionPerDomain_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	domains := []string{"swap", "repair", "veggie", "transport"}

	for iter := 0; iter < 200; iter++ {
		size := 1 + rng.Intn(12)
		actions := make([]catalog.Action, size)
		for i := range actions {
			actions[i] = action(
				fmt.Sprintf("r%d", i),
				domains[rng.Intn(len(domains))],
				float64(rng.Intn(4))/4,
				float64(rng.Intn(4))/4,
			)
		}
		c := mustCatalog(t, actions...)
		got := TopActionPerDomain(c)

		for _, d := range c.Domains() {
			var want catalog.Action
			found := false
			for _, a := range actions {
				if a.Domain != d {
					continue
				}
				if !found || a.Priority() > want.Priority() {
					want = a
					found = true
				}
			}
			if got[d].ID != want.ID {
				t.Fatalf("iter %d domain %s: winner = %s, want %s", iter, d, got[d].ID, want.ID)
			}
		}
		if len(got) != len(c.Domains()) {
			t.Fatalf("iter %d: %d winners for %d domains", iter, len(got), len(c.Domains()))
		}
	}
}

func TestDomainTopScored(t *testing.T) {
	got := domainTopScored(catalog.BuildCatalog())
	for _, it := range got {
		if it.Score != it.Action.Priority() {
			t.Errorf("%s score = %f, want %f", it.Action.ID, it.Score, it.Action.Priority())
		}
	}
}
