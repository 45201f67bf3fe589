// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

// Package recommend implements the crop recommendation engine: resolve the
// request context against the regional reference table, score the resulting
// feature vector with the classifier, filter the ranking through regional
// suitability rules, backfill to a fixed-size list, and enrich every entry
// with advisory text. The engine is stateless per request and safe for
// concurrent use; the table, classifier and rules are read-only after
// construction.
package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovista/cropadvisor/internal/classifier"
	"github.com/agrovista/cropadvisor/internal/reference"
)

// backfillReason tags entries added from the raw ranking without passing
// the rule filter.
const backfillReason = "model-recommended, not verified against regional rules"

// degradedReason is attached when the model cannot produce probabilities.
const degradedReason = "no probability estimate available"

// Engine produces explained crop recommendations. It is safe for
// concurrent use.
type Engine struct {
	config     *Config
	logger     zerolog.Logger
	table      *reference.Table
	classifier classifier.Classifier
	resolver   *Resolver
	rules      *RuleSet

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine wires the engine from its loaded dependencies. The resolver
// binding between model features and table columns is established here, so
// an incompatible model/table pair fails at startup.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, table *reference.Table, clf classifier.Classifier, rules *RuleSet, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if table == nil {
		return nil, fmt.Errorf("reference table is required")
	}
	if clf == nil {
		return nil, fmt.Errorf("classifier is required")
	}
	if len(clf.Classes()) == 0 {
		return nil, ErrNoClasses
	}
	if rules == nil {
		rules = DefaultRuleSet()
	}

	resolver, err := NewResolver(clf.Features())
	if err != nil {
		return nil, fmt.Errorf("bind model features: %w", err)
	}

	return &Engine{
		config:     cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
		table:      table,
		classifier: clf,
		resolver:   resolver,
		rules:      rules,
	}, nil
}

// RequestCount returns the number of Recommend calls served so far.
func (e *Engine) RequestCount() int64 {
	return e.requestCount.Load()
}

// ErrorCount returns the number of Recommend calls that failed.
func (e *Engine) ErrorCount() int64 {
	return e.errorCount.Load()
}

// Crops returns the crop labels the engine can recommend.
func (e *Engine) Crops() []string {
	return e.classifier.Classes()
}

// Recommend resolves the request context, ranks crops and returns exactly
// top_k recommendations (or fewer only when the model knows fewer crops).
// The context is accepted for interface symmetry with the transport layer;
// all work is in-memory and does not block.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	topK, err := e.resolveTopK(req.TopK)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	row, tier := e.table.Lookup(reference.Query{
		District:     req.District,
		Season:       req.Season,
		SoilType:     req.SoilType,
		AltitudeZone: req.AltitudeZone,
	})

	predictions, degraded, err := e.predict(row)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("classify: %w", err)
	}

	kept, rejected := e.rules.Filter(predictions, req.Season, req.SoilType, req.AltitudeZone, req.Irrigation)
	recommendations, backfilled := finalize(kept, predictions, topK, degraded)

	resp := &Response{
		Recommendations: recommendations,
		Context: ResolvedContext{
			District:     row.District,
			Season:       row.Season,
			SoilType:     row.SoilType,
			AltitudeZone: row.AltitudeZone,
			FallbackTier: tier,
			Features:     e.resolver.Named(row),
		},
		Metadata: Metadata{
			LatencyMS:         time.Since(start).Milliseconds(),
			Backfilled:        backfilled,
			Degraded:          degraded,
			RejectionsByCheck: countRejections(rejected),
		},
	}

	e.logger.Debug().
		Str("district", req.District).
		Str("season", req.Season).
		Int("fallback_tier", tier).
		Int("returned", len(recommendations)).
		Int("rejected", len(rejected)).
		Int("backfilled", backfilled).
		Bool("degraded", degraded).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// resolveTopK applies the default and cap to the requested list size.
func (e *Engine) resolveTopK(topK int) (int, error) {
	if topK < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTopK, topK)
	}
	if topK == 0 {
		topK = e.config.DefaultTopK
	}
	if topK > e.config.MaxTopK {
		topK = e.config.MaxTopK
	}
	return topK, nil
}

// predict scores the resolved row and returns the full ranking. When the
// model cannot produce probabilities it degrades to a single point
// prediction with probability 1.0.
func (e *Engine) predict(row reference.Row) ([]Prediction, bool, error) {
	features := e.resolver.Vector(row)

	prob, ok := e.classifier.(classifier.Probabilistic)
	if !ok {
		crop, err := e.classifier.Predict(features)
		if err != nil {
			return nil, false, err
		}
		return []Prediction{{Crop: crop, Probability: 1.0}}, true, nil
	}

	probs, err := prob.PredictProba(features)
	if err != nil {
		return nil, false, err
	}

	classes := e.classifier.Classes()
	predictions := make([]Prediction, len(classes))
	for i, class := range classes {
		p := probs[i]
		// NaN and negative probabilities count as zero.
		if math.IsNaN(p) || p < 0 {
			p = 0
		}
		predictions[i] = Prediction{Crop: class, Probability: p}
	}

	// Stable sort keeps the model's class order on ties.
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Probability > predictions[j].Probability
	})

	return predictions, false, nil
}

// finalize trims the filtered list to topK and backfills any remaining
// slots from the raw ranking, skipping crops already included. Backfilled
// entries are marked unverified.
func finalize(kept []Scored, raw []Prediction, topK int, degraded bool) ([]Recommendation, int) {
	if len(kept) > topK {
		kept = kept[:topK]
	}

	recommendations := make([]Recommendation, 0, topK)
	seen := make(map[string]struct{}, topK)

	for _, s := range kept {
		recommendations = append(recommendations, buildRecommendation(s.Crop, s.Score, true, s.Reasons, degraded))
		seen[normalize(s.Crop)] = struct{}{}
	}

	backfilled := 0
	for _, pred := range raw {
		if len(recommendations) >= topK {
			break
		}
		if _, dup := seen[normalize(pred.Crop)]; dup {
			continue
		}
		recommendations = append(recommendations,
			buildRecommendation(pred.Crop, pred.Probability, false, []string{backfillReason}, degraded))
		seen[normalize(pred.Crop)] = struct{}{}
		backfilled++
	}

	return recommendations, backfilled
}

// buildRecommendation attaches advisory enrichment and the degraded-mode
// reason when applicable.
func buildRecommendation(crop string, score float64, verified bool, reasons []string, degraded bool) Recommendation {
	if degraded {
		reasons = append(reasons, degradedReason)
	}

	adv := Enrich(crop)
	return Recommendation{
		Crop:          crop,
		Score:         score,
		Verified:      verified,
		Reasons:       reasons,
		Emoji:         adv.Emoji,
		FertilizerTip: adv.FertilizerTip,
		IrrigationTip: adv.IrrigationTip,
	}
}

// countRejections aggregates rejections per rule check for the response
// metadata.
func countRejections(rejections []Rejection) map[string]int {
	if len(rejections) == 0 {
		return nil
	}
	counts := make(map[string]int, 4)
	for _, r := range rejections {
		counts[r.Check]++
	}
	return counts
}
