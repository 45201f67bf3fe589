// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

// Package classifier loads a trained crop classifier from a JSON artifact
// and scores feature vectors against it. Two model families are supported:
// a Gaussian naive Bayes model that yields a full probability distribution
// over crops, and a nearest-centroid model that yields only a single label.
// The artifact type selects the implementation once at load time; callers
// type-assert for the Probabilistic interface to detect which one they got.
package classifier

import "errors"

// Classifier predicts the single most likely crop for a feature vector.
// The vector must follow the artifact's feature order exactly.
type Classifier interface {
	// Classes returns the crop labels the model can predict, in the
	// artifact's class order.
	Classes() []string

	// Features returns the feature names the model expects, in order.
	Features() []string

	// Predict returns the most likely crop for the feature vector.
	Predict(features []float64) (string, error)
}

// Probabilistic is implemented by models that can rank every class.
type Probabilistic interface {
	Classifier

	// PredictProba returns one probability per class, aligned with
	// Classes(), summing to 1.
	PredictProba(features []float64) ([]float64, error)
}

var (
	// ErrBadArtifact is returned when the artifact is malformed or its
	// matrix shapes disagree with the declared classes and features.
	ErrBadArtifact = errors.New("invalid classifier artifact")

	// ErrDimensionMismatch is returned when a feature vector's length
	// does not match the model's feature count.
	ErrDimensionMismatch = errors.New("feature vector length does not match model")
)
