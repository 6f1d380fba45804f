package filter

import "github.com/noelk8888/realestate/models"

// PageSize is the fixed number of listings per result page.
const PageSize = 14

// TotalPages returns how many 1-indexed pages a result count fills.
func TotalPages(resultCount int) int {
	if resultCount <= 0 {
		return 0
	}
	return (resultCount + PageSize - 1) / PageSize
}

// paginate slices out the given 1-indexed page. Pages below 1 clamp to 1;
// pages past the end come back empty.
func paginate(listings []models.Listing, page int) []models.Listing {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(listings) {
		return nil
	}
	end := start + PageSize
	if end > len(listings) {
		end = len(listings)
	}

	out := make([]models.Listing, end-start)
	copy(out, listings[start:end])
	return out
}
