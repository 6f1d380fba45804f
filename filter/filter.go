package filter

import (
	"strings"

	"github.com/noelk8888/realestate/models"
)

// bypassCode returns the listing code a query resolves to for the exact-match
// escape hatch, or "" when the query is empty. A direct code lookup must
// always surface its listing, whatever the filter panel says.
func bypassCode(query string) string {
	return strings.ToUpper(strings.TrimSpace(query))
}

func isBypass(l models.Listing, code string) bool {
	return code != "" && strings.ToUpper(l.ID) == code
}

// applyFilters returns the listings surviving the category, geography,
// direct, availability and numeric-range filters. All filters AND together;
// a listing whose code exactly matches the query bypasses every one of them.
func applyFilters(listings []models.Listing, st State) []models.Listing {
	code := bypassCode(st.Query)

	var kept []models.Listing
	for _, l := range listings {
		if isBypass(l, code) {
			kept = append(kept, l)
			continue
		}
		if !matchesSaleMode(l, st.SaleMode) {
			continue
		}
		if !matchesCategory(l, st.Category) {
			continue
		}
		if !matchesGeo(l, st) {
			continue
		}
		if st.DirectOnly && !l.IsDirect {
			continue
		}
		if !st.IncludeUnavailable && !l.Available() {
			continue
		}
		if !matchesRanges(l, st) {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// matchesSaleMode checks price presence, not the SaleType display string.
func matchesSaleMode(l models.Listing, mode SaleMode) bool {
	switch mode {
	case SaleModeSale:
		return l.Price > 0
	case SaleModeLease:
		return l.LeasePrice > 0
	case SaleModeBoth:
		return l.Price > 0 && l.LeasePrice > 0
	}
	return true
}

// matchesCategory substring-matches against the combined category+badge text.
func matchesCategory(l models.Listing, category string) bool {
	if category == "" {
		return true
	}
	return strings.Contains(l.CategoryText(), strings.ToLower(category))
}

// matchesGeo applies the geographic cascade. Each level is an independent
// equality check; the caller is responsible for clearing child selections
// when a parent changes.
func matchesGeo(l models.Listing, st State) bool {
	if st.Region != "" && !strings.EqualFold(l.Region, st.Region) {
		return false
	}
	if st.Province != "" && !strings.EqualFold(l.Province, st.Province) {
		return false
	}
	if st.City != "" && !strings.EqualFold(l.City, st.City) {
		return false
	}
	if st.Barangay != "" && !strings.EqualFold(l.Barangay, st.Barangay) {
		return false
	}
	return true
}

func matchesRanges(l models.Listing, st State) bool {
	price, perSqm := l.Price, l.PricePerSqm
	if st.SaleMode == SaleModeLease {
		price, perSqm = l.LeasePrice, l.LeasePricePerSqm
	}

	if st.Price.Active() && !st.Price.Contains(price) {
		return false
	}
	if st.PricePerSqm.Active() && !st.PricePerSqm.Contains(perSqm) {
		return false
	}
	if st.LotArea.Active() && !st.LotArea.Contains(l.LotArea) {
		return false
	}
	if st.FloorArea.Active() && !st.FloorArea.Contains(l.FloorArea) {
		return false
	}
	return true
}
