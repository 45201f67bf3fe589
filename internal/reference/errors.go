// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package reference

import "errors"

var (
	// ErrMissingColumns is returned when the CSV header lacks required columns.
	ErrMissingColumns = errors.New("reference table is missing required columns")

	// ErrBadNumericValue is returned when a numeric column holds an unparseable value.
	ErrBadNumericValue = errors.New("reference table contains a non-numeric value")

	// ErrEmptyTable is returned when the CSV contains a header but no data rows.
	ErrEmptyTable = errors.New("reference table contains no rows")
)
