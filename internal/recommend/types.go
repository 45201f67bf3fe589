// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package recommend

// Request describes the agronomic context to recommend crops for.
// All text fields are matched case- and whitespace-insensitively.
type Request struct {
	// District is the administrative district, e.g. "Dehradun".
	District string

	// Season is the cropping season, e.g. "Kharif", "Rabi", "Zaid".
	Season string

	// SoilType is the dominant soil class, e.g. "Loamy", "Clay".
	SoilType string

	// AltitudeZone is the elevation band, e.g. "Terai", "Mid-Hills".
	AltitudeZone string

	// Irrigation is the available water source, e.g. "rainfed", "canal".
	Irrigation string

	// TopK is the number of recommendations to return. Zero means the
	// configured default; negative values are rejected.
	TopK int
}

// Prediction pairs a crop label with its model probability.
type Prediction struct {
	Crop        string
	Probability float64
}

// Recommendation is a single ranked entry returned to the caller. Every
// recommendation carries at least one reason explaining its inclusion.
type Recommendation struct {
	// Crop is the model's class label.
	Crop string `json:"crop"`

	// Score is the model probability, unchanged by filtering or enrichment.
	Score float64 `json:"score"`

	// Verified reports whether the crop passed every regional rule check.
	Verified bool `json:"verified"`

	// Reasons explains why the crop is in the list, in check order.
	Reasons []string `json:"reasons"`

	// Advisory fields, always populated.
	Emoji         string `json:"emoji"`
	FertilizerTip string `json:"fertilizer_tip"`
	IrrigationTip string `json:"irrigation_tip"`
}

// ResolvedContext reports how the request context was resolved against the
// reference table, including which fallback tier supplied the features.
type ResolvedContext struct {
	District     string             `json:"district"`
	Season       string             `json:"season"`
	SoilType     string             `json:"soil_type"`
	AltitudeZone string             `json:"altitude_zone"`
	FallbackTier int                `json:"fallback_tier"`
	Features     map[string]float64 `json:"features"`
}

// Metadata carries per-request diagnostics alongside the recommendations.
type Metadata struct {
	// LatencyMS is the end-to-end engine latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Backfilled counts entries added from the raw ranking after the
	// rule filter removed too many candidates.
	Backfilled int `json:"backfilled"`

	// Degraded is true when the model could not produce probabilities
	// and a single point prediction was used instead.
	Degraded bool `json:"degraded"`

	// RejectionsByCheck counts candidates removed per rule check,
	// keyed by "altitude", "season", "soil" or "irrigation".
	RejectionsByCheck map[string]int `json:"rejections_by_check,omitempty"`
}

// Response is the engine's answer to a Request.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Context         ResolvedContext  `json:"resolved_context"`
	Metadata        Metadata         `json:"metadata"`
}
