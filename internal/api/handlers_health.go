// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package api

import (
	"net/http"
	"time"

	"github.com/agrovista/cropadvisor/internal/models"
)

// healthStatus is the payload of GET /api/v1/health.
type healthStatus struct {
	Status   string `json:"status"`
	Crops    int    `json:"crops"`
	Requests int64  `json:"requests_served"`
	Errors   int64  `json:"requests_failed"`
}

// Health handles GET /api/v1/health with a service summary.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: healthStatus{
			Status:   "healthy",
			Crops:    len(h.engine.Crops()),
			Requests: h.engine.RequestCount(),
			Errors:   h.engine.ErrorCount(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive handles GET /api/v1/health/live. It only proves the process
// is responding.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"alive"}`))
}

// HealthReady handles GET /api/v1/health/ready. The engine is constructed
// before the server starts, so readiness follows from a loaded model.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil || len(h.engine.Crops()) == 0 {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Recommendation engine not ready", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ready"}`))
}
