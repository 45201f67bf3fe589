// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package recommend

import "testing"

func TestEnrichKnownCrop(t *testing.T) {
	adv := Enrich("Rice")

	if adv.Emoji != "🌾" {
		t.Errorf("unexpected emoji %q", adv.Emoji)
	}
	if adv.FertilizerTip != "Apply N-rich fertilizer early; keep moderate P, K." {
		t.Errorf("unexpected fertilizer tip %q", adv.FertilizerTip)
	}
	if adv.IrrigationTip != "Requires standing water; irrigate frequently." {
		t.Errorf("unexpected irrigation tip %q", adv.IrrigationTip)
	}
}

func TestEnrichUnknownCropGetsDefaults(t *testing.T) {
	adv := Enrich("dragonfruit")

	if adv.Emoji != defaultEmoji {
		t.Errorf("unexpected emoji %q", adv.Emoji)
	}
	if adv.FertilizerTip != defaultFertilizerTip {
		t.Errorf("unexpected fertilizer tip %q", adv.FertilizerTip)
	}
	if adv.IrrigationTip != defaultIrrigationTip {
		t.Errorf("unexpected irrigation tip %q", adv.IrrigationTip)
	}
}

func TestEnrichPartialCoverage(t *testing.T) {
	// Sorghum has an emoji but no dedicated tips.
	adv := Enrich("sorghum")

	if adv.Emoji != "🌱" {
		t.Errorf("unexpected emoji %q", adv.Emoji)
	}
	if adv.FertilizerTip != defaultFertilizerTip {
		t.Errorf("expected default fertilizer tip, got %q", adv.FertilizerTip)
	}
}

func TestEnrichNeverEmpty(t *testing.T) {
	for _, crop := range []string{"", "  ", "rice", "RICE", "unknown-crop"} {
		adv := Enrich(crop)
		if adv.Emoji == "" || adv.FertilizerTip == "" || adv.IrrigationTip == "" {
			t.Errorf("Enrich(%q) left a field empty: %+v", crop, adv)
		}
	}
}
