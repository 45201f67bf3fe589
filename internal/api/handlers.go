// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

// Package api exposes the recommendation engine over HTTP using the Chi
// router. It owns request decoding, validation, error mapping and the
// Prometheus instrumentation of every endpoint; all domain logic lives in
// the recommend package.
package api

import (
	"github.com/rs/zerolog"

	"github.com/agrovista/cropadvisor/internal/recommend"
)

// Handler holds the HTTP handlers and their shared dependencies.
type Handler struct {
	engine *recommend.Engine
	logger zerolog.Logger
}

// NewHandler creates the API handler set.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(engine *recommend.Engine, logger zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger.With().Str("component", "api").Logger(),
	}
}
