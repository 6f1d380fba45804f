package filter

import "github.com/noelk8888/realestate/models"

// sponsoredPool collects the injectable listings: sponsored and still
// available. The pool ignores the active filters on purpose: sponsorship
// buys a slot on every page.
func sponsoredPool(listings []models.Listing) []models.Listing {
	var pool []models.Listing
	for _, l := range listings {
		if l.Sponsored && l.Available() {
			pool = append(pool, l)
		}
	}
	return pool
}

// injectSponsored places one sponsored listing into the page at slot 2 or 3
// (never first). Candidates are narrowed by locality first (same city as the
// top of the page, then same region, then the whole pool) and the pick is
// decorrelated by page number and day of month so it is stable within a day
// but varies across pages. The returned slice is a new one.
func injectSponsored(page []models.Listing, pool []models.Listing, pageNum, dayOfMonth int) []models.Listing {
	if len(page) == 0 || len(pool) == 0 {
		return page
	}

	top := page
	if len(top) > 20 {
		top = top[:20]
	}

	candidates := matchingLocality(pool, top, func(a, b models.Listing) bool {
		return a.City != "" && a.City == b.City
	})
	if len(candidates) == 0 {
		candidates = matchingLocality(pool, top, func(a, b models.Listing) bool {
			return a.Region != "" && a.Region == b.Region
		})
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	pick := candidates[(pageNum+dayOfMonth)%len(candidates)]

	out := make([]models.Listing, 0, len(page)+1)
	for _, l := range page {
		if l.ID == pick.ID {
			continue
		}
		out = append(out, l)
	}

	pos := 2
	if len(out) == 1 {
		pos = 1
	}
	if pos > len(out) {
		pos = len(out)
	}

	out = append(out, models.Listing{})
	copy(out[pos+1:], out[pos:])
	out[pos] = pick
	return out
}

func matchingLocality(pool, top []models.Listing, same func(a, b models.Listing) bool) []models.Listing {
	var matched []models.Listing
	for _, s := range pool {
		for _, t := range top {
			if same(s, t) {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}
