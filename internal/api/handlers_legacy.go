// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ecobee/internal/logging"
	"github.com/tomtom215/ecobee/internal/metrics"
	"github.com/tomtom215/ecobee/internal/recommend"
	"github.com/tomtom215/ecobee/internal/validation"
)

// Routes under /api without a version prefix answer with bare JSON bodies
// and no envelope. Errors are {"error": message}.

// legacyError is the error body of the unversioned routes.
type legacyError struct {
	Error string `json:"error"`
}

// LegacyLeaderboard handles GET /api/leaderboard with a bare entry array.
func (h *Handler) LegacyLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeBareJSON(w, r, http.StatusOK, h.leaderboard.List())
}

// LegacySubmitScore handles POST /api/submit-score. A stored submission is
// answered with the bare entry and status 200.
func (h *Handler) LegacySubmitScore(w http.ResponseWriter, r *http.Request) {
	entry, _, err := h.submit(w, r)
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		writeBareJSON(w, r, http.StatusBadRequest, legacyError{Error: "Invalid payload"})
	case errors.Is(err, errNameThrottled):
		writeBareJSON(w, r, http.StatusTooManyRequests, legacyError{Error: "Too many submissions"})
	case err != nil:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Internal error")
		writeBareJSON(w, r, http.StatusInternalServerError, legacyError{Error: "Internal error"})
	default:
		writeBareJSON(w, r, http.StatusOK, entry)
	}
}

// LegacyRecommend handles GET /api/recommend?seedId= with a bare action
// array.
func (h *Handler) LegacyRecommend(w http.ResponseWriter, r *http.Request) {
	seed := r.URL.Query().Get("seedId")
	if seed == "" {
		seed = r.URL.Query().Get("seed_id")
	}

	n, _, verr := parseLimit(r, "n", h.engine.Config().Limits.MaxK)
	if verr != nil {
		writeBareJSON(w, r, http.StatusBadRequest, legacyError{Error: verr.Error()})
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		SeedID:    strings.TrimSpace(seed),
		N:         n,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Internal error")
		writeBareJSON(w, r, http.StatusInternalServerError, legacyError{Error: "Internal error"})
		return
	}

	metrics.RecordRecommendation(resp.Strategy.String(), len(resp.Items), resp.Metadata.CacheHit)
	writeBareJSON(w, r, http.StatusOK, resp.Actions())
}

func writeBareJSON(w http.ResponseWriter, r *http.Request, statusCode int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, `{"error":"encoding failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(data, '\n')); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}
