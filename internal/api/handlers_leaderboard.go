// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/ecobee/internal/leaderboard"
	"github.com/tomtom215/ecobee/internal/logging"
	"github.com/tomtom215/ecobee/internal/metrics"
	"github.com/tomtom215/ecobee/internal/validation"
)

// maxLeaderboardLimit caps the limit query parameter.
const maxLeaderboardLimit = 1000

// errNameThrottled reports a submission refused by the per-name throttle.
var errNameThrottled = errors.New("name throttled")

// SubmitScore handles POST /api/v1/leaderboard
//
// @Summary Submit a score to the leaderboard
// @Description Returns 201 when the entry is on the board and 200 when a full board evicted it immediately.
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param request body SubmitScoreRequest true "Display name and score"
// @Success 201 {object} APIResponse{data=leaderboard.Entry}
// @Success 200 {object} APIResponse{data=leaderboard.Entry} "Accepted but not retained"
// @Failure 400 {object} APIResponse "VALIDATION_ERROR"
// @Failure 429 {object} APIResponse "RATE_LIMITED"
// @Router /api/v1/leaderboard [post]
func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	entry, retained, err := h.submit(w, r)
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		rw.Validation(verr)
	case errors.Is(err, errNameThrottled):
		rw.RateLimited("Too many submissions for this name, try again later")
	case err != nil:
		rw.InternalError(err)
	case retained:
		rw.Created(entry)
	default:
		rw.Success(entry)
	}
}

// submit decodes, validates and throttles a score submission and offers it
// to the board.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) (leaderboard.Entry, bool, error) {
	var req SubmitScoreRequest
	if verr := decodeJSON(w, r, &req); verr != nil {
		metrics.RecordLeaderboardSubmission(metrics.ResultRejected, h.leaderboard.Len())
		return leaderboard.Entry{}, false, verr
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordLeaderboardSubmission(metrics.ResultRejected, h.leaderboard.Len())
		return leaderboard.Entry{}, false, verr
	}

	if !h.throttle.Allow(req.Name) {
		metrics.RecordRateLimitHit("name")
		metrics.RecordLeaderboardSubmission(metrics.ResultThrottled, h.leaderboard.Len())
		return leaderboard.Entry{}, false, errNameThrottled
	}

	entry, retained, err := h.leaderboard.Offer(req.Name, *req.Score)
	if err != nil {
		var lverr *leaderboard.ValidationError
		if errors.As(err, &lverr) {
			metrics.RecordLeaderboardSubmission(metrics.ResultRejected, h.leaderboard.Len())
			return leaderboard.Entry{}, false, validation.NewRequestValidationError(lverr.Field, "invalid", lverr.Field+" "+lverr.Message, nil)
		}
		return leaderboard.Entry{}, false, err
	}

	metrics.RecordLeaderboardSubmission(metrics.ResultAccepted, h.leaderboard.Len())
	logging.Ctx(r.Context()).Info().
		Str("entry_id", entry.ID).
		Float64("score", entry.Score).
		Bool("retained", retained).
		Msg("Leaderboard entry submitted")

	return entry, retained, nil
}

// Leaderboard handles GET /api/v1/leaderboard
//
// @Summary Leaderboard sorted by score
// @Description Entries sorted by score descending; equal scores keep submission order.
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Maximum entries (1..1000)"
// @Success 200 {object} APIResponse{data=[]leaderboard.Entry}
// @Failure 400 {object} APIResponse "Invalid limit"
// @Router /api/v1/leaderboard [get]
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok, verr := parseLimit(r, "limit", maxLeaderboardLimit)
	if verr != nil {
		rw.Validation(verr)
		return
	}

	var entries []leaderboard.Entry
	if ok {
		entries = h.leaderboard.Top(limit)
	} else {
		entries = h.leaderboard.List()
	}

	rw.List(entries, len(entries))
}
