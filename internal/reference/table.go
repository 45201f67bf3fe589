// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

// Package reference holds the regional reference table: one row per
// (district, season, soil type, altitude zone) combination carrying the
// expected soil nutrients and climate values for that context. Lookups
// relax the context progressively so a recommendation can always be made,
// falling back to global column means when no row matches at all.
package reference

import (
	"strings"
)

// Identity column names in the reference CSV.
const (
	ColDistrict     = "district"
	ColSeason       = "season"
	ColSoilType     = "soil_type"
	ColAltitudeZone = "altitude_zone"
)

// NumericColumns lists the required numeric columns in the reference CSV.
var NumericColumns = []string{
	"est_n",
	"est_p",
	"est_k",
	"est_ph",
	"temperature",
	"humidity",
	"rainfall",
}

// Fallback tiers returned by Lookup, ordered from most to least specific.
const (
	TierExact        = 1 // district + season + soil type + altitude zone
	TierDropAltitude = 2 // district + season + soil type
	TierDropSoil     = 3 // district + season
	TierDistrictOnly = 4 // district
	TierGlobalMeans  = 5 // synthesized row of global column means
)

// Row is a single reference table entry. Identity fields are stored
// normalized (lowercased, trimmed); Values holds the numeric columns
// keyed by column name.
type Row struct {
	District     string
	Season       string
	SoilType     string
	AltitudeZone string
	Values       map[string]float64
}

// Query identifies the agronomic context to resolve against the table.
type Query struct {
	District     string
	Season       string
	SoilType     string
	AltitudeZone string
}

// Table is an immutable, in-memory reference table. It is built once at
// startup by LoadCSV and safe for concurrent reads.
type Table struct {
	rows  []Row
	means map[string]float64
}

// Normalize lowercases and trims a context value for matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// ColumnMeans returns the global mean of each numeric column, computed
// once at load time. The returned map must not be modified.
func (t *Table) ColumnMeans() map[string]float64 {
	return t.means
}

// Lookup resolves a context against the table, relaxing it one field at a
// time: exact match first, then without altitude zone, then without soil
// type, then district alone. When nothing matches it synthesizes a row of
// global column means with the query's identity fields echoed back, so a
// caller always receives usable feature values. The returned tier reports
// which stage produced the row.
func (t *Table) Lookup(q Query) (Row, int) {
	district := Normalize(q.District)
	season := Normalize(q.Season)
	soil := Normalize(q.SoilType)
	altitude := Normalize(q.AltitudeZone)

	if row, ok := t.match(func(r Row) bool {
		return r.District == district && r.Season == season &&
			r.SoilType == soil && r.AltitudeZone == altitude
	}); ok {
		return row, TierExact
	}

	if row, ok := t.match(func(r Row) bool {
		return r.District == district && r.Season == season && r.SoilType == soil
	}); ok {
		return row, TierDropAltitude
	}

	if row, ok := t.match(func(r Row) bool {
		return r.District == district && r.Season == season
	}); ok {
		return row, TierDropSoil
	}

	if row, ok := t.match(func(r Row) bool {
		return r.District == district
	}); ok {
		return row, TierDistrictOnly
	}

	return Row{
		District:     district,
		Season:       season,
		SoilType:     soil,
		AltitudeZone: altitude,
		Values:       t.means,
	}, TierGlobalMeans
}

// match returns the first row satisfying the predicate, preserving CSV
// order so repeated lookups are deterministic.
func (t *Table) match(pred func(Row) bool) (Row, bool) {
	for _, r := range t.rows {
		if pred(r) {
			return r, true
		}
	}
	return Row{}, false
}
