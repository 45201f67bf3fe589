// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/agrovista/cropadvisor/internal/metrics"
	"github.com/agrovista/cropadvisor/internal/models"
	"github.com/agrovista/cropadvisor/internal/recommend"
)

// Recommend handles POST /api/v1/recommendations. It decodes and validates
// the request, runs the engine and maps engine errors to API error codes.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		metrics.RecordRecommendation("invalid_request", time.Since(start))
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRecommendation("invalid_request", time.Since(start))
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		District:     req.District,
		Season:       req.Season,
		SoilType:     req.SoilType,
		AltitudeZone: req.AltitudeZone,
		Irrigation:   req.Irrigation,
		TopK:         req.TopK,
	})
	if err != nil {
		h.respondEngineError(w, err, start)
		return
	}

	metrics.RecordRecommendation("ok", time.Since(start))
	metrics.RecordFallbackTier(resp.Context.FallbackTier)
	metrics.RecordBackfill(resp.Metadata.Backfilled)
	for check, count := range resp.Metadata.RejectionsByCheck {
		for i := 0; i < count; i++ {
			metrics.RecordRuleRejection(check)
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   resp,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondEngineError maps engine failures to API status codes.
func (h *Handler) respondEngineError(w http.ResponseWriter, err error, start time.Time) {
	switch {
	case errors.Is(err, recommend.ErrInvalidTopK):
		metrics.RecordRecommendation("invalid_request", time.Since(start))
		respondError(w, http.StatusBadRequest, "INVALID_TOP_K", "top_k must be a positive integer", nil)
	case errors.Is(err, recommend.ErrNoClasses):
		metrics.RecordRecommendation("error", time.Since(start))
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Classifier has no classes", err)
	default:
		metrics.RecordRecommendation("error", time.Since(start))
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to generate recommendations", err)
	}
}

// Crops handles GET /api/v1/crops, listing every crop the engine can
// recommend together with its advisory enrichment.
func (h *Handler) Crops(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	type cropInfo struct {
		Crop          string `json:"crop"`
		Emoji         string `json:"emoji"`
		FertilizerTip string `json:"fertilizer_tip"`
		IrrigationTip string `json:"irrigation_tip"`
	}

	classes := h.engine.Crops()
	crops := make([]cropInfo, len(classes))
	for i, crop := range classes {
		adv := recommend.Enrich(crop)
		crops[i] = cropInfo{
			Crop:          crop,
			Emoji:         adv.Emoji,
			FertilizerTip: adv.FertilizerTip,
			IrrigationTip: adv.IrrigationTip,
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   crops,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
