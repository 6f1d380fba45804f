package filter

import (
	"time"

	"github.com/noelk8888/realestate/models"
)

// View is what one recompute hands the presentation layer: the current page,
// paging totals, and the dropdown options derived from the filtered set.
type View struct {
	PageItems    []models.Listing
	Page         int
	TotalPages   int
	TotalResults int
	Options      GeoOptions
}

// Recompute runs the whole deterministic pipeline (filters, sort, sponsored
// injection, pagination) over a search result set, or the full dataset when
// no query is active. It is a pure function of its inputs and re-runs in
// full on every state change.
func Recompute(results []models.Listing, st State) View {
	return RecomputeAt(results, st, time.Now())
}

// RecomputeAt is Recompute with an explicit clock, which pins down the
// day-of-month input to the sponsored slot.
func RecomputeAt(results []models.Listing, st State, now time.Time) View {
	// Dropdown options come from the set after sale-mode+category filtering
	// but before geography pruning, so a selection never empties its own
	// dropdown.
	preGeo := make([]models.Listing, 0, len(results))
	for _, l := range results {
		if matchesSaleMode(l, st.SaleMode) && matchesCategory(l, st.Category) {
			preGeo = append(preGeo, l)
		}
	}
	opts := geoOptions(preGeo, st)

	filtered := applyFilters(results, st)
	ordered := sortListings(filtered, st.Sort)

	page := st.Page
	if page < 1 {
		page = 1
	}

	items := paginate(ordered, page)
	items = injectSponsored(items, sponsoredPool(results), page, now.Day())

	return View{
		PageItems:    items,
		Page:         page,
		TotalPages:   TotalPages(len(ordered)),
		TotalResults: len(ordered),
		Options:      opts,
	}
}
