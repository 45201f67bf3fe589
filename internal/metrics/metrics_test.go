// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("ok"))

	RecordRecommendation("ok", 15*time.Millisecond)
	RecordRecommendation("ok", 5*time.Millisecond)

	after := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("ok"))
	if after-before != 2 {
		t.Errorf("expected 2 recorded recommendations, got %v", after-before)
	}
}

func TestRecordFallbackTier(t *testing.T) {
	before := testutil.ToFloat64(ContextFallbackTier.WithLabelValues("5"))

	RecordFallbackTier(5)

	after := testutil.ToFloat64(ContextFallbackTier.WithLabelValues("5"))
	if after-before != 1 {
		t.Errorf("expected tier 5 counter to increment by 1, got %v", after-before)
	}
}

func TestRecordRuleRejection(t *testing.T) {
	checks := []string{"altitude", "season", "soil", "irrigation"}

	for _, check := range checks {
		before := testutil.ToFloat64(RuleRejections.WithLabelValues(check))
		RecordRuleRejection(check)
		after := testutil.ToFloat64(RuleRejections.WithLabelValues(check))
		if after-before != 1 {
			t.Errorf("check %s: expected increment of 1, got %v", check, after-before)
		}
	}
}

func TestRecordBackfill(t *testing.T) {
	before := testutil.ToFloat64(BackfillEntries)

	RecordBackfill(3)
	RecordBackfill(0) // no-op

	after := testutil.ToFloat64(BackfillEntries)
	if after-before != 3 {
		t.Errorf("expected backfill counter to grow by 3, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)

	after := testutil.ToFloat64(APIActiveRequests)
	if after-before != 1 {
		t.Errorf("expected net one active request, got %v", after-before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200"))

	RecordAPIRequest("POST", "/api/v1/recommendations", "200", 20*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200"))
	if after-before != 1 {
		t.Errorf("expected API request counter to increment, got %v", after-before)
	}
}
