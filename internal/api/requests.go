// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ecobee/internal/ecoscore"
	"github.com/tomtom215/ecobee/internal/validation"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// SubmitScoreRequest is the leaderboard submission payload.
// Score is a pointer so a missing score is distinguishable from 0.
type SubmitScoreRequest struct {
	Name  string   `json:"name" validate:"notblank,max=64"`
	Score *float64 `json:"score" validate:"required,finite"`
}

// EcoScoreRequest is the quiz intake payload.
type EcoScoreRequest struct {
	ecoscore.Intake

	// N is how many recommendations to return for the result.
	N int `json:"n,omitempty" validate:"omitempty,min=1"`
}

// EcoScoreResponse pairs a scored intake with actions targeting its weakest
// boundaries.
type EcoScoreResponse struct {
	Score           ecoscore.Result `json:"score"`
	WeakestFirst    []string        `json:"weakest_boundaries"`
	Recommendations interface{}     `json:"recommendations"`
}

// decodeJSON reads a single JSON object from the request body into dst.
// Unknown fields and trailing data are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) *validation.RequestValidationError {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return validation.NewRequestValidationError("body", "required", "request body is required", nil)
		case errors.As(err, &maxErr):
			return validation.NewRequestValidationError("body", "max", fmt.Sprintf("request body must not exceed %d bytes", maxBodyBytes), nil)
		default:
			return validation.NewRequestValidationError("body", "json", "request body must be a valid JSON object", nil)
		}
	}
	if dec.More() {
		return validation.NewRequestValidationError("body", "json", "request body must contain a single JSON object", nil)
	}
	return nil
}

// parseLimit parses an optional positive integer query parameter. ok is
// false when the parameter is absent; an error is returned when it is
// present but not an integer in [1, max].
func parseLimit(r *http.Request, name string, max int) (n int, ok bool, verr *validation.RequestValidationError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > max {
		return 0, false, validation.NewRequestValidationError(
			name, "range",
			fmt.Sprintf("%s must be an integer between 1 and %d", name, max),
			raw,
		)
	}
	return n, true, nil
}
