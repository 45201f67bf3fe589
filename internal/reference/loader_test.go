// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package reference

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reference.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if table.Len() != 4 {
		t.Errorf("expected 4 rows, got %d", table.Len())
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadCSVHeaderCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reference.csv")

	data := "District,SEASON,Soil_Type,Altitude_Zone,Est_N,Est_P,Est_K,Est_pH,Temperature,Humidity,Rainfall\n" +
		"Dehradun,Kharif,Loamy,Mid-Hills,90,42,43,6.5,24.0,80.0,1200\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 row, got %d", table.Len())
	}
}
