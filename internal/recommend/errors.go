// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package recommend

import "errors"

var (
	// ErrInvalidTopK is returned when a request carries a negative TopK.
	ErrInvalidTopK = errors.New("top_k must be a positive integer")

	// ErrNoClasses is returned when the classifier exposes zero classes.
	ErrNoClasses = errors.New("classifier has no classes")
)
