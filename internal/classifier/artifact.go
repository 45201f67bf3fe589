// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package classifier

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Artifact model type discriminators.
const (
	TypeGaussianNB = "gaussian_nb"
	TypeCentroid   = "centroid"
)

// artifact is the on-disk JSON layout of a trained model. Gaussian naive
// Bayes artifacts carry priors, theta and variance; centroid artifacts
// carry centroids. All matrices are [class][feature].
type artifact struct {
	Type     string      `json:"type"`
	Features []string    `json:"features"`
	Classes  []string    `json:"classes"`
	Priors   []float64   `json:"priors,omitempty"`
	Theta    [][]float64 `json:"theta,omitempty"`
	Variance [][]float64 `json:"variance,omitempty"`

	Centroids [][]float64 `json:"centroids,omitempty"`
}

// Load reads a classifier artifact from the file at path and returns the
// model it describes. Malformed artifacts fail loudly so the service never
// starts with a broken model.
func Load(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier artifact: %w", err)
	}

	clf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier artifact %s: %w", path, err)
	}
	return clf, nil
}

// Parse decodes and validates a classifier artifact from JSON data.
func Parse(data []byte) (Classifier, error) {
	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
	}

	if len(art.Classes) == 0 {
		return nil, fmt.Errorf("%w: no classes", ErrBadArtifact)
	}
	if len(art.Features) == 0 {
		return nil, fmt.Errorf("%w: no features", ErrBadArtifact)
	}

	switch art.Type {
	case TypeGaussianNB:
		return newGaussianNB(&art)
	case TypeCentroid:
		return newCentroid(&art)
	default:
		return nil, fmt.Errorf("%w: unknown model type %q", ErrBadArtifact, art.Type)
	}
}

// checkMatrix verifies a [class][feature] matrix has the expected shape.
func checkMatrix(name string, m [][]float64, classes, features int) error {
	if len(m) != classes {
		return fmt.Errorf("%w: %s has %d rows, want %d", ErrBadArtifact, name, len(m), classes)
	}
	for i, row := range m {
		if len(row) != features {
			return fmt.Errorf("%w: %s row %d has %d values, want %d", ErrBadArtifact, name, i, len(row), features)
		}
	}
	return nil
}
