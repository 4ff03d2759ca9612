// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"math"
	"net/http"
	"testing"
)

type scoredItem struct {
	Action struct {
		ID     string `json:"id"`
		Domain string `json:"domain"`
	} `json:"action"`
	Score float64 `json:"score"`
}

type recommendData struct {
	Strategy string       `json:"strategy"`
	Items    []scoredItem `json:"items"`
	Metadata struct {
		RequestID string `json:"request_id"`
		Requested int    `json:"requested"`
		Returned  int    `json:"returned"`
	} `json:"metadata"`
}

func itemIDs(items []scoredItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Action.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantStrategy string
		wantIDs      []string
	}{
		{"similarity", "/api/v1/recommend?seed_id=a1&n=2", "similarity", []string{"a2", "a3"}},
		{"similarity excludes seed", "/api/v1/recommend?seed_id=a1&n=10", "similarity", []string{"a2", "a3", "a4"}},
		{"no seed falls back", "/api/v1/recommend", "domain_top", []string{"a1", "a2", "a3", "a4"}},
		{"unknown seed falls back untruncated", "/api/v1/recommend?seed_id=zz&n=1", "domain_top", []string{"a1", "a2", "a3", "a4"}},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK || !env.Success {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}

			var data recommendData
			decodeData(t, env, &data)
			if data.Strategy != tt.wantStrategy {
				t.Errorf("strategy = %q, want %q", data.Strategy, tt.wantStrategy)
			}
			if got := itemIDs(data.Items); !equalStrings(got, tt.wantIDs) {
				t.Errorf("items = %v, want %v", got, tt.wantIDs)
			}
			if data.Metadata.RequestID != env.Meta.RequestID {
				t.Errorf("metadata.request_id %q != meta.request_id %q", data.Metadata.RequestID, env.Meta.RequestID)
			}
		})
	}
}

func TestRecommend_InvalidN(t *testing.T) {
	s := newTestServer(t)

	for _, n := range []string{"0", "-3", "abc", "21", "1.5"} {
		t.Run(n, func(t *testing.T) {
			rec, env := s.do(t, http.MethodGet, "/api/v1/recommend?seed_id=a1&n="+n, "")
			expectError(t, rec, env, http.StatusBadRequest, ErrCodeValidation)
			if env.Error != nil && env.Error.Details["field"] != "n" {
				t.Errorf("details.field = %v, want n", env.Error.Details["field"])
			}
		})
	}
}

func TestActions(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/actions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var all []struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &all)
	if len(all) != 4 || all[0].ID != "a1" || all[3].ID != "a4" {
		t.Errorf("actions = %+v, want a1..a4 in order", all)
	}
	if env.Meta.Count == nil || *env.Meta.Count != 4 {
		t.Errorf("meta.count = %v, want 4", env.Meta.Count)
	}

	_, env = s.do(t, http.MethodGet, "/api/v1/actions?domain=repair", "")
	var filtered []struct {
		ID string `json:"id"`
	}
	decodeData(t, env, &filtered)
	if len(filtered) != 1 || filtered[0].ID != "a2" {
		t.Errorf("repair actions = %+v, want [a2]", filtered)
	}

	_, env = s.do(t, http.MethodGet, "/api/v1/actions?domain=none", "")
	if string(env.Data) != "[]" {
		t.Errorf("unknown domain data = %s, want []", env.Data)
	}
}

func TestActionByID(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/actions/a1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var details struct {
		Action struct {
			ID string `json:"id"`
		} `json:"action"`
		Neighbors []interface{} `json:"neighbors"`
		Similar   []scoredItem  `json:"similar"`
	}
	decodeData(t, env, &details)
	if details.Action.ID != "a1" {
		t.Errorf("action.id = %q", details.Action.ID)
	}
	if details.Neighbors == nil || len(details.Neighbors) != 0 {
		t.Errorf("neighbors = %v, want empty list (one action per domain)", details.Neighbors)
	}
	if got := itemIDs(details.Similar); !equalStrings(got, []string{"a2", "a3", "a4"}) {
		t.Errorf("similar = %v, want [a2 a3 a4]", got)
	}

	rec, env = s.do(t, http.MethodGet, "/api/v1/actions/missing", "")
	expectError(t, rec, env, http.StatusNotFound, ErrCodeNotFound)
}

func TestDomainsTopAndGraph(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodGet, "/api/v1/domains/top", "")
	var winners []struct {
		ID     string `json:"id"`
		Domain string `json:"domain"`
	}
	decodeData(t, env, &winners)
	if len(winners) != 4 {
		t.Fatalf("winners = %d, want 4", len(winners))
	}
	seen := map[string]bool{}
	for _, w := range winners {
		if seen[w.Domain] {
			t.Errorf("domain %q appears twice", w.Domain)
		}
		seen[w.Domain] = true
	}

	_, env = s.do(t, http.MethodGet, "/api/v1/graph", "")
	var adjacency map[string][]string
	decodeData(t, env, &adjacency)
	if len(adjacency) != 4 {
		t.Errorf("graph nodes = %d, want 4", len(adjacency))
	}
}

func TestResources(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/resources", "")
	if rec.Code != http.StatusOK || env.Meta.Count == nil || *env.Meta.Count == 0 {
		t.Fatalf("resources status=%d count=%v", rec.Code, env.Meta.Count)
	}

	_, env = s.do(t, http.MethodGet, "/api/v1/resources?action_id=unknown", "")
	if string(env.Data) != "[]" {
		t.Errorf("unknown action resources = %s, want []", env.Data)
	}
}

func TestStats(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/v1/recommend?seed_id=a1", "")
	s.do(t, http.MethodGet, "/api/v1/recommend", "")

	_, env := s.do(t, http.MethodGet, "/api/v1/stats", "")
	var stats struct {
		Engine struct {
			Requests   int64 `json:"requests"`
			Similarity int64 `json:"similarity"`
			DomainTop  int64 `json:"domain_top"`
		} `json:"engine"`
		Endpoints []struct {
			Endpoint string `json:"endpoint"`
		} `json:"endpoints"`
	}
	decodeData(t, env, &stats)

	if stats.Engine.Requests != 2 || stats.Engine.Similarity != 1 || stats.Engine.DomainTop != 1 {
		t.Errorf("engine stats = %+v", stats.Engine)
	}
	if len(stats.Endpoints) == 0 || stats.Endpoints[0].Endpoint != "GET /api/v1/recommend" {
		t.Errorf("endpoints = %+v, want GET /api/v1/recommend first", stats.Endpoints)
	}
}

func TestRecommend_ExtremeMagnitudes(t *testing.T) {
	s := newTestServer(t, withVectors(t, map[string][]float64{
		"a1": {1e-200, 0},
		"a2": {1e-200, 0},
		"a3": {1e200, 1e200},
		"a4": {1e200, 1e200},
	}))

	tests := []struct {
		seed  string
		first string
	}{
		{"a1", "a2"},
		{"a3", "a4"},
	}
	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			rec, env := s.do(t, http.MethodGet, "/api/v1/recommend?seed_id="+tt.seed+"&n=3", "")
			if rec.Code != http.StatusOK || !env.Success {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}

			var data recommendData
			decodeData(t, env, &data)
			if data.Strategy != "similarity" || len(data.Items) != 3 {
				t.Fatalf("strategy = %q, items = %d", data.Strategy, len(data.Items))
			}
			if got := data.Items[0]; got.Action.ID != tt.first || math.Abs(got.Score-1) > 1e-9 {
				t.Errorf("first = %s (%f), want %s (1)", got.Action.ID, got.Score, tt.first)
			}
		})
	}
}
