package search

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the scoring weights and price heuristics. The exact numbers
// were settled by trial against the live dataset, so they are loaded from a
// YAML file rather than hard-coded.
type Tuning struct {
	Scoring struct {
		ExactPhraseBonus int `yaml:"exact_phrase_bonus"`
		TokenBonus       int `yaml:"token_bonus"`
		AllTokensBonus   int `yaml:"all_tokens_bonus"`
		LocationBonus    int `yaml:"location_bonus"`
	} `yaml:"scoring"`
	Price struct {
		BandLow  float64 `yaml:"band_low"`  // lower multiplier for plain price queries
		BandHigh float64 `yaml:"band_high"` // upper multiplier for plain price queries
	} `yaml:"price"`
}

// DefaultTuning returns the tuning the live site ships with.
func DefaultTuning() Tuning {
	var t Tuning
	t.Scoring.ExactPhraseBonus = 100
	t.Scoring.TokenBonus = 15
	t.Scoring.AllTokensBonus = 35
	t.Scoring.LocationBonus = 20
	t.Price.BandLow = 0.9
	t.Price.BandHigh = 1.1
	return t
}

// LoadTuning reads tuning overrides from a YAML file. Zero-valued fields fall
// back to the defaults so a partial file is fine.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if t.Price.BandLow <= 0 {
		t.Price.BandLow = 0.9
	}
	if t.Price.BandHigh <= 0 {
		t.Price.BandHigh = 1.1
	}
	return t, nil
}
