package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/noelk8888/realestate/models"
)

// ParsedQuery is the structured form of a free-text query, rebuilt on every
// search and discarded after scoring. Unset price bounds mean unconstrained.
type ParsedQuery struct {
	MinPrice    float64
	MaxPrice    float64
	HasMinPrice bool
	HasMaxPrice bool
	Locations   []string
	Types       []models.PropertyType
	Keywords    []string
}

var (
	// priceRegexp matches "5m", "5.5M", "500k", "10 million", "10,000".
	// The leading word boundary keeps it from firing inside listing codes
	// like G07463. Long suffixes come first so "million" is not cut to "m".
	priceRegexp = regexp.MustCompile(`\b(\d+(?:[.,]\d+)?)\s*(million|thousand|m\b|k\b)?`)

	// priceTokenRegexp matches bare price-like tokens ("10m", "5k", "100")
	// that must not contribute to keyword scoring.
	priceTokenRegexp = regexp.MustCompile(`(?i)^\d+[mk]?$`)

	// nonWordRegexp strips punctuation from location candidate tokens.
	nonWordRegexp = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// directionWords change how an extracted price is interpreted and are dropped
// from keyword scoring.
var directionWords = map[string]bool{
	"under": true, "over": true, "below": true, "above": true,
}

// stopWords are never treated as location tokens.
var stopWords = map[string]bool{
	"in": true, "at": true, "near": true, "around": true, "with": true,
	"a": true, "an": true, "the": true, "for": true,
	"sale": true, "lease": true, "price": true,
	"seeking": true, "looking": true, "find": true, "me": true,
	"condo": true, "lot": true, "unit": true,
	"under": true, "over": true, "below": true, "above": true,
}

// ParseQuery converts arbitrary user text into search criteria using the
// default tuning. It never fails: text it cannot make sense of simply leaves
// every field unconstrained.
func ParseQuery(query string) ParsedQuery {
	return ParseQueryTuned(query, DefaultTuning())
}

// ParseQueryTuned is ParseQuery with explicit price-band tuning.
func ParseQueryTuned(query string, tuning Tuning) ParsedQuery {
	lower := strings.ToLower(query)
	result := ParsedQuery{}

	// Price extraction: first number-looking token wins.
	if m := priceRegexp.FindStringSubmatch(lower); m != nil {
		num, _ := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		suffix := m[2]

		target := num
		switch {
		case strings.HasPrefix(suffix, "m"):
			target = num * 1_000_000
		case strings.HasPrefix(suffix, "k"), suffix == "thousand":
			target = num * 1_000
		}

		// Small plain integers ("2 br") are not prices; require a unit
		// suffix or a value past 1000.
		if target > 1000 || suffix != "" {
			switch {
			case strings.Contains(lower, "under") || strings.Contains(lower, "below"):
				result.MaxPrice = target
				result.HasMaxPrice = true
			case strings.Contains(lower, "over") || strings.Contains(lower, "above"):
				result.MinPrice = target
				result.HasMinPrice = true
			default:
				result.MinPrice = target * tuning.Price.BandLow
				result.MaxPrice = target * tuning.Price.BandHigh
				result.HasMinPrice = true
				result.HasMaxPrice = true
			}
		}
	}

	// Type extraction: substring match, multiple types OR together.
	if strings.Contains(lower, "condo") || strings.Contains(lower, "unit") {
		result.Types = append(result.Types, models.TypeCondo)
	}
	if strings.Contains(lower, "lot") || strings.Contains(lower, "land") {
		result.Types = append(result.Types, models.TypeLot)
	}

	// Location extraction: whatever survives the stop-word list. Real NER
	// would be better; token filtering has proven good enough here.
	for _, word := range strings.Fields(lower) {
		clean := nonWordRegexp.ReplaceAllString(word, "")
		if clean == "" || stopWords[clean] {
			continue
		}
		if clean[0] >= '0' && clean[0] <= '9' {
			continue
		}
		result.Locations = append(result.Locations, clean)
	}

	result.Keywords = QueryTokens(query)
	return result
}

// QueryTokens derives the tokens used for general substring scoring: at least
// two characters, with price qualifiers and price-like numbers removed. This
// deliberately overlaps with, but is looser than, the Locations extraction.
func QueryTokens(query string) []string {
	clean := strings.TrimSpace(strings.ToLower(query))

	var tokens []string
	for _, t := range strings.Fields(clean) {
		if len(t) < 2 {
			continue
		}
		if directionWords[t] {
			continue
		}
		if priceTokenRegexp.MatchString(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}
