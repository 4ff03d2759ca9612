// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/ecobee/internal/ecoscore"
	"github.com/tomtom215/ecobee/internal/metrics"
	"github.com/tomtom215/ecobee/internal/recommend"
	"github.com/tomtom215/ecobee/internal/validation"
)

// weakestReported is how many weakest boundaries the EcoScore response lists.
const weakestReported = 3

// EcoScore handles POST /api/v1/ecoscore
//
// @Summary Score a lifestyle intake
// @Description Computes per-boundary scores (0 worst, 100 best) and recommends actions for the weakest boundaries.
// @Tags EcoScore
// @Accept json
// @Produce json
// @Param request body EcoScoreRequest true "Quantities per item for diet, mobility and fashion"
// @Success 200 {object} APIResponse{data=EcoScoreResponse}
// @Failure 400 {object} APIResponse "VALIDATION_ERROR"
// @Router /api/v1/ecoscore [post]
func (h *Handler) EcoScore(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req EcoScoreRequest
	if verr := decodeJSON(w, r, &req); verr != nil {
		metrics.RecordEcoScore(0, verr)
		rw.Validation(verr)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordEcoScore(0, verr)
		rw.Validation(verr)
		return
	}

	result, err := ecoscore.Score(req.Intake)
	if err != nil {
		metrics.RecordEcoScore(0, err)
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			rw.Validation(verr)
			return
		}
		rw.InternalError(err)
		return
	}
	metrics.RecordEcoScore(result.Composite, nil)

	recs, err := h.engine.RecommendForScores(r.Context(), result.Boundaries, req.N)
	if err != nil {
		rw.InternalError(err)
		return
	}
	metrics.RecordRecommendation(recs.Strategy.String(), len(recs.Items), false)

	rw.Success(EcoScoreResponse{
		Score:           result,
		WeakestFirst:    recommend.WeakestBoundaries(result.Boundaries, weakestReported),
		Recommendations: recs,
	})
}
