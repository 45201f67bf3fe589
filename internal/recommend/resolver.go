// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package recommend

import (
	"fmt"
	"strings"

	"github.com/agrovista/cropadvisor/internal/reference"
)

// featureAliases maps model feature names to the reference table columns
// that may carry them, in preference order. Model artifacts and reference
// CSVs come from different training pipelines and do not always agree on
// naming.
var featureAliases = map[string][]string{
	"N":                 {"est_n", "n"},
	"P":                 {"est_p", "p"},
	"K":                 {"est_k", "k"},
	"SOIL_PH":           {"est_ph", "soil_ph"},
	"TEMP":              {"temperature", "temp", "ave_temp", "avg_temperature"},
	"RELATIVE_HUMIDITY": {"humidity", "relative_humidity", "avg_humidity"},
}

// Resolver projects a reference table row onto the model's feature order.
// The feature-to-column binding is computed once at construction and fails
// fast when a model feature cannot be matched to any table column, so a
// model/table mismatch aborts startup instead of producing silent garbage.
type Resolver struct {
	features []string
	columns  []string // parallel to features
}

// NewResolver binds the model's feature names to reference table columns.
func NewResolver(features []string) (*Resolver, error) {
	available := make(map[string]struct{}, len(reference.NumericColumns))
	for _, col := range reference.NumericColumns {
		available[col] = struct{}{}
	}

	columns := make([]string, len(features))
	for i, feat := range features {
		col, ok := resolveColumn(feat, available)
		if !ok {
			return nil, fmt.Errorf("model feature %q matches no reference table column", feat)
		}
		columns[i] = col
	}

	return &Resolver{features: features, columns: columns}, nil
}

// resolveColumn finds the first alias of a feature present in the table,
// falling back to the lowercased feature name itself.
func resolveColumn(feature string, available map[string]struct{}) (string, bool) {
	candidates := featureAliases[strings.ToUpper(strings.TrimSpace(feature))]
	candidates = append(candidates, strings.ToLower(strings.TrimSpace(feature)))

	for _, cand := range candidates {
		if _, ok := available[cand]; ok {
			return cand, true
		}
	}
	return "", false
}

// Vector builds the model input from a resolved reference row, in the
// model's feature order.
func (r *Resolver) Vector(row reference.Row) []float64 {
	vec := make([]float64, len(r.columns))
	for i, col := range r.columns {
		vec[i] = row.Values[col]
	}
	return vec
}

// Named returns the feature vector keyed by model feature name, for
// inclusion in the response's resolved context.
func (r *Resolver) Named(row reference.Row) map[string]float64 {
	named := make(map[string]float64, len(r.features))
	for i, col := range r.columns {
		named[r.features[i]] = row.Values[col]
	}
	return named
}
