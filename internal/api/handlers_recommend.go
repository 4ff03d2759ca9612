// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/logging"
	"github.com/tomtom215/ecobee/internal/metrics"
	"github.com/tomtom215/ecobee/internal/recommend"
)

// Recommend handles GET /api/v1/recommend
//
// @Summary Recommend sustainability actions
// @Description Ranks actions by embedding similarity to seed_id. Without a resolvable seed it returns the best action of every domain.
// @Tags Recommendations
// @Produce json
// @Param seed_id query string false "Seed action id"
// @Param n query int false "Number of results (1..max_k)"
// @Success 200 {object} APIResponse{data=recommend.Response}
// @Failure 400 {object} APIResponse "Invalid n"
// @Router /api/v1/recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, r.URL.Query().Get("seed_id"))
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request, seedID string) {
	rw := NewResponseWriter(w, r)

	n, _, verr := parseLimit(r, "n", h.engine.Config().Limits.MaxK)
	if verr != nil {
		rw.Validation(verr)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		SeedID:    strings.TrimSpace(seedID),
		N:         n,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		rw.InternalError(err)
		return
	}

	metrics.RecordRecommendation(resp.Strategy.String(), len(resp.Items), resp.Metadata.CacheHit)
	rw.Success(resp)
}

// Actions handles GET /api/v1/actions
//
// @Summary List catalog actions
// @Tags Catalog
// @Produce json
// @Param domain query string false "Filter by domain"
// @Success 200 {object} APIResponse{data=[]catalog.Action}
// @Router /api/v1/actions [get]
func (h *Handler) Actions(w http.ResponseWriter, r *http.Request) {
	c := h.engine.Catalog()

	var actions []catalog.Action
	if domain := strings.TrimSpace(r.URL.Query().Get("domain")); domain != "" {
		actions = c.ByDomain(domain)
	} else {
		actions = c.Actions()
	}
	if actions == nil {
		actions = []catalog.Action{}
	}

	NewResponseWriter(w, r).List(actions, len(actions))
}

// ActionByID handles GET /api/v1/actions/{id}
//
// @Summary Get an action with its neighbours, similar actions and resources
// @Tags Catalog
// @Produce json
// @Param id path string true "Action id"
// @Success 200 {object} APIResponse{data=recommend.Details}
// @Failure 404 {object} APIResponse "Unknown action"
// @Router /api/v1/actions/{id} [get]
func (h *Handler) ActionByID(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	details, err := h.engine.ActionDetails(id)
	if err != nil {
		if errors.Is(err, recommend.ErrUnknownAction) {
			rw.NotFound("Unknown action: " + id)
			return
		}
		rw.InternalError(err)
		return
	}

	rw.Success(details)
}

// DomainsTop handles GET /api/v1/domains/top
//
// @Summary Best action per domain
// @Description For every domain, the action with the highest feasibility * boundary_gap.
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=[]catalog.Action}
// @Router /api/v1/domains/top [get]
func (h *Handler) DomainsTop(w http.ResponseWriter, r *http.Request) {
	winners := recommend.TopActionPerDomainOrdered(h.engine.Catalog())
	NewResponseWriter(w, r).List(winners, len(winners))
}

// Graph handles GET /api/v1/graph
//
// @Summary Affinity graph adjacency
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=map[string][]string}
// @Router /api/v1/graph [get]
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Graph().Adjacency())
}

// Resources handles GET /api/v1/resources
//
// @Summary List campus resources
// @Tags Catalog
// @Produce json
// @Param action_id query string false "Only resources supporting this action"
// @Success 200 {object} APIResponse{data=[]catalog.Resource}
// @Router /api/v1/resources [get]
func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	var resources []catalog.Resource
	if id := strings.TrimSpace(r.URL.Query().Get("action_id")); id != "" {
		resources = catalog.ResourcesFor(id)
	} else {
		resources = catalog.Resources()
	}
	if resources == nil {
		resources = []catalog.Resource{}
	}

	NewResponseWriter(w, r).List(resources, len(resources))
}

// Stats handles GET /api/v1/stats
//
// @Summary Engine counters and endpoint latency
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse
// @Router /api/v1/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"engine":      h.engine.Stats(),
		"endpoints":   h.perf.GetStats(),
		"leaderboard": map[string]int{"entries": h.leaderboard.Len(), "capacity": h.leaderboard.Capacity()},
	})
}
