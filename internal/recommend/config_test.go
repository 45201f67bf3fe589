// CropAdvisor - Regional Crop Recommendation Service
// Copyright 2026 Agrovista Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrovista/cropadvisor

package recommend

import "testing"

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.DefaultTopK != 3 {
		t.Errorf("DefaultTopK = %d, want 3", cfg.DefaultTopK)
	}
}

func TestEngineConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{DefaultTopK: 3, MaxTopK: 25}, false},
		{"zero default", Config{DefaultTopK: 0, MaxTopK: 25}, true},
		{"max below default", Config{DefaultTopK: 5, MaxTopK: 3}, true},
		{"equal limits", Config{DefaultTopK: 5, MaxTopK: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngineConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.DefaultTopK = 10
	if cfg.DefaultTopK == 10 {
		t.Error("Clone must not share state with the original")
	}
}
