// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agrovista/cropadvisor/internal/config"
	"github.com/agrovista/cropadvisor/internal/metrics"
)

// healthRateLimit is deliberately permissive so monitoring probes are
// never throttled.
const healthRateLimit = 1000

// NewRouter assembles the HTTP routing tree:
//
//	GET  /api/v1/health{,/live,/ready}   health probes
//	POST /api/v1/recommendations         recommendation requests
//	GET  /api/v1/crops                   known crops with advisories
//	GET  /metrics                        Prometheus exposition
func NewRouter(cfg *config.Config, handler *Handler) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.Timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(healthRateLimit, time.Minute))
		r.Get("/", handler.Health)
		r.Get("/live", handler.HealthLive)
		r.Get("/ready", handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Security.RateLimitRequests > 0 {
			r.Use(httprate.LimitByIP(cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow))
		}
		r.Use(prometheusMiddleware)

		r.Post("/recommendations", handler.Recommend)
		r.Get("/crops", handler.Crops)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// prometheusMiddleware records request counts, latency and in-flight gauge
// per route pattern.
func prometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		endpoint := chi.RouteContext(r.Context()).RoutePattern()
		if endpoint == "" {
			endpoint = r.URL.Path
		}
		metrics.RecordAPIRequest(r.Method, endpoint, strconv.Itoa(ww.Status()), time.Since(start))
	})
}
