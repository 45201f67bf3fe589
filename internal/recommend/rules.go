// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package recommend

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Rule check names, used in rejection records and metrics labels.
const (
	CheckAltitude   = "altitude"
	CheckSeason     = "season"
	CheckSoil       = "soil"
	CheckIrrigation = "irrigation"
)

// RuleSet holds the regional suitability rules applied after classification.
// Altitude and irrigation are exclusion lists; season and soil are
// allow-lists. A nil entry (or an absent key) means "no constraint" for
// that context value, never "everything excluded".
type RuleSet struct {
	AltitudeExclusions   map[string][]string `koanf:"altitude_exclusions"`
	SeasonCrops          map[string][]string `koanf:"season_crops"`
	SoilCrops            map[string][]string `koanf:"soil_crops"`
	IrrigationExclusions map[string][]string `koanf:"irrigation_exclusions"`
}

// Scored is a candidate that survived rule filtering, or was backfilled.
type Scored struct {
	Crop    string
	Score   float64
	Reasons []string
}

// Rejection records a candidate removed by a rule check.
type Rejection struct {
	Crop   string
	Check  string
	Reason string
}

// DefaultRuleSet returns the built-in Uttarakhand suitability rules.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		AltitudeExclusions: map[string][]string{
			"high-hills": {"sugarcane", "paddy", "maize"},
			"mid-hills":  {"sugarcane", "paddy"},
			"terai":      {},
		},
		SeasonCrops: map[string][]string{
			"kharif": {"paddy", "maize", "millets", "pulses", "soybean", "groundnut", "sorghum"},
			"rabi":   {"wheat", "barley", "mustard", "chickpea", "lentil", "potato", "vegetables"},
			"zaid":   {"watermelon", "cucumber", "vegetables", "muskmelon", "fodder crops", "cucurbits"},
		},
		SoilCrops: map[string][]string{
			"loamy": nil, // loam supports everything
			"clay":  {"rice", "maize", "sugarcane"},
			"silty": {"wheat", "vegetables", "horticulture"},
			"sandy": {"millets", "potato", "fodder crops", "groundnut"},
		},
		IrrigationExclusions: map[string][]string{
			"rainfed":   {"paddy", "sugarcane"},
			"canal":     {},
			"tube well": {},
			"tubewell":  {},
		},
	}
}

// LoadRuleSet reads a rule table override from a YAML file. Keys and crop
// names are normalized at load so filtering never has to re-normalize the
// rule side.
func LoadRuleSet(path string) (*RuleSet, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load rule table %s: %w", path, err)
	}

	rules := &RuleSet{}
	if err := k.Unmarshal("", rules); err != nil {
		return nil, fmt.Errorf("failed to parse rule table %s: %w", path, err)
	}

	rules.normalize()
	return rules, nil
}

// normalize lowercases and trims all keys and crop names in place.
func (rs *RuleSet) normalize() {
	rs.AltitudeExclusions = normalizeRuleMap(rs.AltitudeExclusions)
	rs.SeasonCrops = normalizeRuleMap(rs.SeasonCrops)
	rs.SoilCrops = normalizeRuleMap(rs.SoilCrops)
	rs.IrrigationExclusions = normalizeRuleMap(rs.IrrigationExclusions)
}

func normalizeRuleMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for key, crops := range m {
		if crops == nil {
			out[normalize(key)] = nil
			continue
		}
		normalized := make([]string, len(crops))
		for i, crop := range crops {
			normalized[i] = normalize(crop)
		}
		out[normalize(key)] = normalized
	}
	return out
}

// Filter applies the four rule checks to probability-ordered predictions.
// Survivors keep their relative order and gain a reason summarizing the
// matched context; rejected candidates are returned separately with the
// first check that failed them. Checks run in a fixed order: altitude,
// season, soil, irrigation.
func (rs *RuleSet) Filter(predictions []Prediction, season, soilType, altitudeZone, irrigation string) ([]Scored, []Rejection) {
	season = normalize(season)
	soilType = normalize(soilType)
	altitudeZone = normalize(altitudeZone)
	irrigation = normalize(irrigation)

	var kept []Scored
	var rejected []Rejection

	for _, pred := range predictions {
		crop := normalize(pred.Crop)

		if containsCrop(rs.AltitudeExclusions[altitudeZone], crop) {
			rejected = append(rejected, Rejection{
				Crop:   pred.Crop,
				Check:  CheckAltitude,
				Reason: fmt.Sprintf("Not suitable for altitude zone '%s'", altitudeZone),
			})
			continue
		}

		if allowed := rs.SeasonCrops[season]; allowed != nil && !containsCrop(allowed, crop) {
			rejected = append(rejected, Rejection{
				Crop:   pred.Crop,
				Check:  CheckSeason,
				Reason: fmt.Sprintf("Not typical for season '%s'", season),
			})
			continue
		}

		if allowed := rs.SoilCrops[soilType]; allowed != nil && !containsCrop(allowed, crop) {
			rejected = append(rejected, Rejection{
				Crop:   pred.Crop,
				Check:  CheckSoil,
				Reason: fmt.Sprintf("Not preferred for soil '%s'", soilType),
			})
			continue
		}

		if containsCrop(rs.IrrigationExclusions[irrigation], crop) {
			rejected = append(rejected, Rejection{
				Crop:   pred.Crop,
				Check:  CheckIrrigation,
				Reason: fmt.Sprintf("Requires more irrigation than available ('%s')", irrigation),
			})
			continue
		}

		kept = append(kept, Scored{
			Crop:  pred.Crop,
			Score: pred.Probability,
			Reasons: []string{
				fmt.Sprintf("Matches season '%s', soil '%s' and altitude '%s'", season, soilType, altitudeZone),
			},
		})
	}

	return kept, rejected
}

// normalize lowercases and trims a context value or crop name for matching.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsCrop(crops []string, crop string) bool {
	for _, c := range crops {
		if c == crop {
			return true
		}
	}
	return false
}
