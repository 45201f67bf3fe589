// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package classifier

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// twoClassGNB is a hand-checkable artifact: one feature, two well-separated
// classes with unit variance and equal priors.
const twoClassGNB = `{
	"type": "gaussian_nb",
	"features": ["x"],
	"classes": ["paddy", "wheat"],
	"priors": [0.5, 0.5],
	"theta": [[0.0], [10.0]],
	"variance": [[1.0], [1.0]]
}`

const twoClassCentroid = `{
	"type": "centroid",
	"features": ["x", "y"],
	"classes": ["paddy", "wheat"],
	"centroids": [[0.0, 0.0], [10.0, 10.0]]
}`

func TestParseGaussianNB(t *testing.T) {
	clf, err := Parse([]byte(twoClassGNB))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := clf.Classes(); len(got) != 2 || got[0] != "paddy" || got[1] != "wheat" {
		t.Errorf("unexpected classes: %v", got)
	}
	if got := clf.Features(); len(got) != 1 || got[0] != "x" {
		t.Errorf("unexpected features: %v", got)
	}
	if _, ok := clf.(Probabilistic); !ok {
		t.Error("gaussian_nb model should implement Probabilistic")
	}
}

func TestGaussianNBPredictProba(t *testing.T) {
	clf, err := Parse([]byte(twoClassGNB))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	prob := clf.(Probabilistic)

	// At the midpoint both classes are equally likely.
	probs, err := prob.PredictProba([]float64{5.0})
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}
	if math.Abs(probs[0]-0.5) > 1e-9 || math.Abs(probs[1]-0.5) > 1e-9 {
		t.Errorf("expected [0.5 0.5] at midpoint, got %v", probs)
	}

	// On a class mean the posterior is overwhelming.
	probs, err = prob.PredictProba([]float64{0.0})
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}
	if probs[0] < 0.999 {
		t.Errorf("expected near-certain paddy at its mean, got %v", probs)
	}

	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities should sum to 1, got %v", sum)
	}
}

func TestGaussianNBPredict(t *testing.T) {
	clf, err := Parse([]byte(twoClassGNB))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		x    float64
		want string
	}{
		{0.0, "paddy"},
		{2.0, "paddy"},
		{8.0, "wheat"},
		{10.0, "wheat"},
	}
	for _, tt := range tests {
		got, err := clf.Predict([]float64{tt.x})
		if err != nil {
			t.Fatalf("Predict(%v) failed: %v", tt.x, err)
		}
		if got != tt.want {
			t.Errorf("Predict(%v) = %s, want %s", tt.x, got, tt.want)
		}
	}
}

func TestGaussianNBDimensionMismatch(t *testing.T) {
	clf, err := Parse([]byte(twoClassGNB))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, err := clf.Predict([]float64{1.0, 2.0}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestNearestCentroidPredict(t *testing.T) {
	clf, err := Parse([]byte(twoClassCentroid))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, ok := clf.(Probabilistic); ok {
		t.Error("centroid model must not implement Probabilistic")
	}

	got, err := clf.Predict([]float64{1.0, 2.0})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if got != "paddy" {
		t.Errorf("expected paddy near origin, got %s", got)
	}

	got, err = clf.Predict([]float64{9.0, 8.0})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if got != "wheat" {
		t.Errorf("expected wheat near (10,10), got %s", got)
	}
}

func TestParseRejectsBadArtifacts(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"unknown type", `{"type":"svm","features":["x"],"classes":["a"]}`},
		{"no classes", `{"type":"gaussian_nb","features":["x"],"classes":[]}`},
		{"no features", `{"type":"gaussian_nb","features":[],"classes":["a"]}`},
		{"priors length mismatch", `{"type":"gaussian_nb","features":["x"],"classes":["a","b"],
			"priors":[1.0],"theta":[[0],[1]],"variance":[[1],[1]]}`},
		{"theta shape mismatch", `{"type":"gaussian_nb","features":["x"],"classes":["a","b"],
			"priors":[0.5,0.5],"theta":[[0]],"variance":[[1],[1]]}`},
		{"zero variance", `{"type":"gaussian_nb","features":["x"],"classes":["a","b"],
			"priors":[0.5,0.5],"theta":[[0],[1]],"variance":[[0],[1]]}`},
		{"prior out of range", `{"type":"gaussian_nb","features":["x"],"classes":["a","b"],
			"priors":[0.0,1.0],"theta":[[0],[1]],"variance":[[1],[1]]}`},
		{"centroid shape mismatch", `{"type":"centroid","features":["x","y"],"classes":["a","b"],
			"centroids":[[0,0]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, ErrBadArtifact) {
				t.Errorf("expected ErrBadArtifact, got %v", err)
			}
		})
	}
}

func TestLoadArtifactFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(twoClassGNB), 0o600); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}

	clf, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(clf.Classes()) != 2 {
		t.Errorf("unexpected classes: %v", clf.Classes())
	}
}

func TestLoadArtifactMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}
