package search

import (
	"strings"

	"github.com/noelk8888/realestate/models"
)

// ExcludedScore is the sentinel for listings rejected by a hard filter.
const ExcludedScore = -1

// ScoredListing pairs a listing with its relevance score for one search.
type ScoredListing struct {
	Listing models.Listing
	Score   int
}

// Score computes the relevance of a single listing against parsed criteria.
// Hard filters (price range, property type) return ExcludedScore outright;
// everything else accumulates soft bonuses:
//
//	exact-phrase match of the whole query  → ExactPhraseBonus
//	each query token found in the haystack → TokenBonus
//	every query token found                → AllTokensBonus
//	each location token in city/province/barangay → LocationBonus
func Score(listing models.Listing, criteria ParsedQuery, cleanQuery string, queryTokens []string, tuning Tuning) int {
	if criteria.HasMinPrice && listing.Price < criteria.MinPrice {
		return ExcludedScore
	}
	if criteria.HasMaxPrice && listing.Price > criteria.MaxPrice {
		return ExcludedScore
	}
	if len(criteria.Types) > 0 && !matchesType(criteria.Types, listing.Type) {
		return ExcludedScore
	}

	text := listing.SearchText()
	score := 0

	if strings.Contains(text, cleanQuery) {
		score += tuning.Scoring.ExactPhraseBonus
	}

	matched := 0
	for _, token := range queryTokens {
		if strings.Contains(text, token) {
			matched++
			score += tuning.Scoring.TokenBonus
		}
	}
	if len(queryTokens) > 0 && matched == len(queryTokens) {
		score += tuning.Scoring.AllTokensBonus
	}

	if len(criteria.Locations) > 0 {
		locText := listing.LocationText()
		for _, loc := range criteria.Locations {
			if strings.Contains(locText, loc) {
				score += tuning.Scoring.LocationBonus
			}
		}
	}

	return score
}

func matchesType(types []models.PropertyType, t models.PropertyType) bool {
	for _, want := range types {
		if want == t {
			return true
		}
	}
	return false
}
