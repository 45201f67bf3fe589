// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package classifier

import (
	"fmt"
	"math"
)

// gaussianNB is a Gaussian naive Bayes model. Class scores are computed in
// log space and normalized with log-sum-exp, so small likelihoods do not
// underflow to zero.
type gaussianNB struct {
	features  []string
	classes   []string
	logPriors []float64
	theta     [][]float64 // per-class feature means
	variance  [][]float64 // per-class feature variances
}

func newGaussianNB(art *artifact) (*gaussianNB, error) {
	nClasses := len(art.Classes)
	nFeatures := len(art.Features)

	if len(art.Priors) != nClasses {
		return nil, fmt.Errorf("%w: priors has %d values, want %d", ErrBadArtifact, len(art.Priors), nClasses)
	}
	if err := checkMatrix("theta", art.Theta, nClasses, nFeatures); err != nil {
		return nil, err
	}
	if err := checkMatrix("variance", art.Variance, nClasses, nFeatures); err != nil {
		return nil, err
	}

	logPriors := make([]float64, nClasses)
	for i, p := range art.Priors {
		if p <= 0 || p > 1 {
			return nil, fmt.Errorf("%w: prior %d out of range: %v", ErrBadArtifact, i, p)
		}
		logPriors[i] = math.Log(p)
	}

	for i, row := range art.Variance {
		for j, v := range row {
			if v <= 0 {
				return nil, fmt.Errorf("%w: variance[%d][%d] must be positive, got %v", ErrBadArtifact, i, j, v)
			}
		}
	}

	return &gaussianNB{
		features:  art.Features,
		classes:   art.Classes,
		logPriors: logPriors,
		theta:     art.Theta,
		variance:  art.Variance,
	}, nil
}

func (g *gaussianNB) Classes() []string {
	return g.classes
}

func (g *gaussianNB) Features() []string {
	return g.features
}

// PredictProba returns the posterior probability of each class.
func (g *gaussianNB) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(g.features) {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrDimensionMismatch, len(features), len(g.features))
	}

	logJoint := make([]float64, len(g.classes))
	for c := range g.classes {
		score := g.logPriors[c]
		for f, x := range features {
			mu := g.theta[c][f]
			sigma2 := g.variance[c][f]
			score += -0.5*math.Log(2*math.Pi*sigma2) - (x-mu)*(x-mu)/(2*sigma2)
		}
		logJoint[c] = score
	}

	return softmaxLog(logJoint), nil
}

// Predict returns the class with the highest posterior probability.
func (g *gaussianNB) Predict(features []float64) (string, error) {
	probs, err := g.PredictProba(features)
	if err != nil {
		return "", err
	}

	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return g.classes[best], nil
}

// softmaxLog normalizes log scores into probabilities using the
// log-sum-exp trick.
func softmaxLog(logScores []float64) []float64 {
	max := logScores[0]
	for _, s := range logScores[1:] {
		if s > max {
			max = s
		}
	}

	var sum float64
	probs := make([]float64, len(logScores))
	for i, s := range logScores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
