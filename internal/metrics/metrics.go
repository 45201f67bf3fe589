// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

// Package metrics provides Prometheus instrumentation for the recommendation
// pipeline and the HTTP API. All collectors are registered on the default
// registry via promauto and exposed at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation pipeline metrics

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cropadvisor_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"status"}, // "ok", "invalid_request", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cropadvisor_recommendation_duration_seconds",
			Help:    "End-to-end duration of a recommendation request in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ContextFallbackTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cropadvisor_context_fallback_tier_total",
			Help: "Reference table lookups by the fallback tier that resolved them",
		},
		[]string{"tier"}, // "1" (exact) .. "5" (global means)
	)

	RuleRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cropadvisor_rule_rejections_total",
			Help: "Candidate crops rejected by agronomic rule checks",
		},
		[]string{"check"}, // "altitude", "season", "soil", "irrigation"
	)

	BackfillEntries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cropadvisor_backfill_entries_total",
			Help: "Recommendation slots filled with unverified model candidates",
		},
	)

	// HTTP API metrics

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cropadvisor_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cropadvisor_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cropadvisor_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Data artifact metrics, set once at startup

	ReferenceRowsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cropadvisor_reference_rows_loaded",
			Help: "Number of rows loaded from the regional reference table",
		},
	)

	ModelClassesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cropadvisor_model_classes_loaded",
			Help: "Number of crop classes in the loaded classifier artifact",
		},
	)
)

// RecordRecommendation records the outcome and duration of a recommendation request.
func RecordRecommendation(status string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(status).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordFallbackTier records which tier resolved a reference table lookup.
func RecordFallbackTier(tier int) {
	ContextFallbackTier.WithLabelValues(strconv.Itoa(tier)).Inc()
}

// RecordRuleRejection records a candidate rejected by the named rule check.
func RecordRuleRejection(check string) {
	RuleRejections.WithLabelValues(check).Inc()
}

// RecordBackfill records slots filled with unverified model candidates.
func RecordBackfill(count int) {
	if count > 0 {
		BackfillEntries.Add(float64(count))
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
