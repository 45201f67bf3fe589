// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package classifier

import (
	"fmt"
)

// nearestCentroid assigns the class whose centroid is closest in Euclidean
// distance. It cannot rank classes, so it deliberately does not implement
// the Probabilistic interface.
type nearestCentroid struct {
	features  []string
	classes   []string
	centroids [][]float64
}

func newCentroid(art *artifact) (*nearestCentroid, error) {
	if err := checkMatrix("centroids", art.Centroids, len(art.Classes), len(art.Features)); err != nil {
		return nil, err
	}

	return &nearestCentroid{
		features:  art.Features,
		classes:   art.Classes,
		centroids: art.Centroids,
	}, nil
}

func (n *nearestCentroid) Classes() []string {
	return n.classes
}

func (n *nearestCentroid) Features() []string {
	return n.features
}

// Predict returns the class whose centroid is nearest to the feature
// vector. Squared distance is sufficient for the argmin.
func (n *nearestCentroid) Predict(features []float64) (string, error) {
	if len(features) != len(n.features) {
		return "", fmt.Errorf("%w: got %d features, want %d", ErrDimensionMismatch, len(features), len(n.features))
	}

	best := 0
	bestDist := squaredDistance(features, n.centroids[0])
	for i := 1; i < len(n.centroids); i++ {
		if d := squaredDistance(features, n.centroids[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return n.classes[best], nil
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
