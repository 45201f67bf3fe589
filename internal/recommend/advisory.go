// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package recommend

// Advisory is the farmer-facing enrichment attached to a recommendation.
type Advisory struct {
	Emoji         string
	FertilizerTip string
	IrrigationTip string
}

// Defaults applied to crops absent from the advisory tables.
const (
	defaultEmoji         = "🌱"
	defaultFertilizerTip = "Use balanced NPK based on soil test."
	defaultIrrigationTip = "Use moderate irrigation depending on soil moisture."
)

var cropEmojis = map[string]string{
	"rice":       "🌾",
	"wheat":      "🌾",
	"maize":      "🌽",
	"corn":       "🌽",
	"millets":    "🌱",
	"sorghum":    "🌱",
	"soybean":    "🫘",
	"pulses":     "🫘",
	"chickpea":   "🧆",
	"lentil":     "🧆",
	"potato":     "🥔",
	"vegetables": "🥕",
	"mustard":    "🌼",
	"groundnut":  "🥜",
	"sugarcane":  "🍬",
	"watermelon": "🍉",
	"cucumber":   "🥒",
}

var fertilizerTips = map[string]string{
	"rice":       "Apply N-rich fertilizer early; keep moderate P, K.",
	"wheat":      "Use balanced NPK; apply nitrogen during tillering.",
	"maize":      "High N requirement; apply urea in split doses.",
	"millets":    "Minimal fertilizer; small N application boosts yield.",
	"soybean":    "Low N need; use P and K base fertilizer.",
	"groundnut":  "Apply gypsum + P; minimal nitrogen needed.",
	"potato":     "High K and nitrogen demand for tuber growth.",
	"vegetables": "Use compost + balanced NPK for faster growth.",
	"mustard":    "Requires sulfur + moderate nitrogen.",
	"sugarcane":  "High N requirement; apply compost for soil health.",
	"watermelon": "Use N early, K during fruiting.",
	"cucumber":   "Use balanced NPK; ensure micronutrients.",
}

var irrigationTips = map[string]string{
	"rice":       "Requires standing water; irrigate frequently.",
	"wheat":      "Irrigate 4–5 times at critical stages.",
	"maize":      "Needs good moisture; irrigate every 7–10 days.",
	"millets":    "Grows well with low irrigation.",
	"soybean":    "Light irrigation during flowering.",
	"groundnut":  "Keep soil moist; avoid waterlogging.",
	"potato":     "Regular irrigation needed for tuber expansion.",
	"vegetables": "Requires frequent, light irrigation.",
	"mustard":    "Minimal irrigation; 2–3 times is enough.",
	"sugarcane":  "Heavy irrigation needed throughout growing season.",
	"watermelon": "Moderate irrigation; reduce near harvesting.",
	"cucumber":   "Light, frequent irrigation needed.",
}

// Enrich looks up the advisory for a crop, falling back to the shared
// defaults for unknown names. It never fails.
func Enrich(crop string) Advisory {
	key := normalize(crop)

	adv := Advisory{
		Emoji:         defaultEmoji,
		FertilizerTip: defaultFertilizerTip,
		IrrigationTip: defaultIrrigationTip,
	}
	if e, ok := cropEmojis[key]; ok {
		adv.Emoji = e
	}
	if f, ok := fertilizerTips[key]; ok {
		adv.FertilizerTip = f
	}
	if ir, ok := irrigationTips[key]; ok {
		adv.IrrigationTip = ir
	}
	return adv
}
