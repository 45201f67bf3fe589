// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package api

// RecommendRequest is the JSON body of POST /api/v1/recommendations.
type RecommendRequest struct {
	District     string `json:"district" validate:"required"`
	Season       string `json:"season" validate:"required"`
	SoilType     string `json:"soil_type" validate:"required"`
	AltitudeZone string `json:"altitude_zone" validate:"required"`
	Irrigation   string `json:"irrigation" validate:"required"`

	// TopK is optional; zero lets the engine apply its configured default.
	TopK int `json:"top_k" validate:"omitempty,min=1"`
}
