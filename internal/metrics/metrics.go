// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecobee"

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_rate_limit_hits_total",
			Help:      "Total number of rate limit rejections",
		},
		[]string{"limiter"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Total number of recommendation responses by strategy",
		},
		[]string{"strategy"},
	)

	RecommendationItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_items",
			Help:      "Number of actions returned per recommendation",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 10, 20},
		},
	)

	RankingCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_cache_hits_total",
			Help:      "Total number of similarity ranking cache hits",
		},
	)

	RankingCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_cache_misses_total",
			Help:      "Total number of similarity ranking cache misses",
		},
	)

	// Leaderboard Metrics
	LeaderboardSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_submissions_total",
			Help:      "Total number of leaderboard submissions by result",
		},
		[]string{"result"},
	)

	LeaderboardEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leaderboard_entries",
			Help:      "Number of entries currently on the leaderboard",
		},
	)

	// EcoScore Metrics
	EcoScoreComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ecoscore_computations_total",
			Help:      "Total number of EcoScore computations by result",
		},
		[]string{"result"},
	)

	EcoScoreComposite = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ecoscore_composite",
			Help:      "Distribution of composite EcoScores",
			Buckets:   prometheus.LinearBuckets(10, 10, 9), // 10..90
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "app_info",
			Help:      "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	EmbeddingVectors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "embeddings_vectors",
			Help:      "Number of embedding vectors loaded",
		},
	)

	EmbeddingDimensions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "embeddings_dimensions",
			Help:      "Dimensionality of the loaded embedding vectors",
		},
	)
)

// Submission results
const (
	ResultAccepted  = "accepted"
	ResultRejected  = "rejected"
	ResultThrottled = "throttled"
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejection by the named limiter ("ip" or "name").
func RecordRateLimitHit(limiter string) {
	APIRateLimitHits.WithLabelValues(limiter).Inc()
}

// RecordRecommendation records a served recommendation.
func RecordRecommendation(strategy string, items int, cacheHit bool) {
	RecommendationsTotal.WithLabelValues(strategy).Inc()
	RecommendationItems.Observe(float64(items))
	if strategy != "similarity" {
		return
	}
	if cacheHit {
		RankingCacheHits.Inc()
	} else {
		RankingCacheMisses.Inc()
	}
}

// RecordLeaderboardSubmission records a submission outcome and the board size.
func RecordLeaderboardSubmission(result string, size int) {
	LeaderboardSubmissions.WithLabelValues(result).Inc()
	LeaderboardEntries.Set(float64(size))
}

// RecordEcoScore records a scoring request. composite is ignored on error.
func RecordEcoScore(composite float64, err error) {
	if err != nil {
		EcoScoreComputations.WithLabelValues("error").Inc()
		return
	}
	EcoScoreComputations.WithLabelValues("ok").Inc()
	EcoScoreComposite.Observe(composite)
}

// SetEmbeddingInfo records the size of the loaded embedding table.
func SetEmbeddingInfo(vectors, dims int) {
	EmbeddingVectors.Set(float64(vectors))
	EmbeddingDimensions.Set(float64(dims))
}

// SetAppInfo publishes the running version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}
