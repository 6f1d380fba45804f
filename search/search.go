package search

import (
	"sort"
	"strings"

	"github.com/noelk8888/realestate/models"
)

// SearchListings runs a free-text search over the full dataset and returns
// the matching listings ordered by descending relevance. minScore is the
// broad-vs-exact knob: 0 keeps every keyword match, higher values keep only
// strong matches (the useful thresholds are the sums the scorer can actually
// produce). The call is pure: identical inputs give identical output, and
// ties keep the original dataset order.
func SearchListings(listings []models.Listing, query string, minScore int) []models.Listing {
	return SearchListingsTuned(listings, query, minScore, DefaultTuning())
}

// SearchListingsTuned is SearchListings with explicit tuning.
func SearchListingsTuned(listings []models.Listing, query string, minScore int, tuning Tuning) []models.Listing {
	criteria := ParseQueryTuned(query, tuning)
	cleanQuery := strings.TrimSpace(strings.ToLower(query))
	queryTokens := QueryTokens(query)

	scored := make([]ScoredListing, 0, len(listings))
	for _, l := range listings {
		scored = append(scored, ScoredListing{
			Listing: l,
			Score:   safeScore(l, criteria, cleanQuery, queryTokens, tuning),
		})
	}

	kept := make([]ScoredListing, 0, len(scored))
	for _, s := range scored {
		if s.Score >= minScore {
			kept = append(kept, s)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	results := make([]models.Listing, len(kept))
	for i, s := range kept {
		results[i] = s.Listing
	}
	return results
}

// safeScore shields the search from a fault while scoring a single record:
// one bad listing must not take the rest of the result set down with it.
func safeScore(listing models.Listing, criteria ParsedQuery, cleanQuery string, queryTokens []string, tuning Tuning) (score int) {
	defer func() {
		if r := recover(); r != nil {
			score = ExcludedScore
		}
	}()
	return Score(listing, criteria, cleanQuery, queryTokens, tuning)
}
