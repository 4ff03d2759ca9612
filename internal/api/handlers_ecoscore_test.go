// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"net/http"
	"testing"
)

type ecoScoreData struct {
	Score struct {
		Boundaries map[string]float64 `json:"boundaries"`
		Composite  float64            `json:"composite"`
		Unknown    []struct {
			Category string `json:"category"`
			Item     string `json:"item"`
		} `json:"unknown"`
	} `json:"score"`
	WeakestFirst    []string      `json:"weakest_boundaries"`
	Recommendations recommendData `json:"recommendations"`
}

func TestEcoScore(t *testing.T) {
	s := newTestServer(t)

	body := `{"diet":{"Steak":2,"unicorn":1},"mobility":{"car":50},"fashion":{"jeans":1},"n":2}`
	rec, env := s.do(t, http.MethodPost, "/api/v1/ecoscore", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var data ecoScoreData
	decodeData(t, env, &data)

	if len(data.Score.Boundaries) != 5 {
		t.Errorf("boundaries = %v, want 5 entries", data.Score.Boundaries)
	}
	for b, v := range data.Score.Boundaries {
		if v < 0 || v > 100 {
			t.Errorf("boundary %s = %v, outside [0,100]", b, v)
		}
	}
	if len(data.Score.Unknown) != 1 || data.Score.Unknown[0].Item != "unicorn" {
		t.Errorf("unknown = %+v, want [unicorn]", data.Score.Unknown)
	}
	if len(data.WeakestFirst) != 3 {
		t.Errorf("weakest = %v, want 3 boundaries", data.WeakestFirst)
	}
	if data.Recommendations.Strategy != "boundary_priority" {
		t.Errorf("strategy = %q, want boundary_priority", data.Recommendations.Strategy)
	}
	if len(data.Recommendations.Items) != 2 {
		t.Errorf("recommendations = %d, want 2", len(data.Recommendations.Items))
	}
}

func TestEcoScore_EmptyIntake(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/api/v1/ecoscore", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var data ecoScoreData
	decodeData(t, env, &data)
	if data.Score.Composite != 100 {
		t.Errorf("composite = %v, want 100 for an empty intake", data.Score.Composite)
	}
	if len(data.Recommendations.Items) != 4 {
		t.Errorf("recommendations = %d, want default 4", len(data.Recommendations.Items))
	}
}

func TestEcoScore_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative quantity", `{"diet":{"beef":-1}}`},
		{"wrong type", `{"diet":{"beef":"lots"}}`},
		{"unknown category", `{"housing":{"flat":1}}`},
		{"negative n", `{"diet":{"beef":1},"n":-1}`},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, http.MethodPost, "/api/v1/ecoscore", tt.body)
			expectError(t, rec, env, http.StatusBadRequest, ErrCodeValidation)
		})
	}
}
