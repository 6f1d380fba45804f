package filter

import (
	"sort"

	"github.com/noelk8888/realestate/models"
)

// sortListings orders a result slice in place-copy fashion: it returns a new
// slice and never touches the input. Two fixed rules outrank any explicit
// sort: unavailable listings go strictly after available ones, and when no
// explicit key is chosen, listings with a Facebook link come first.
// After that the explicit numeric comparator applies; equal elements keep
// their prior relative order.
func sortListings(listings []models.Listing, cfg SortConfig) []models.Listing {
	out := make([]models.Listing, len(listings))
	copy(out, listings)

	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].Available(), out[j].Available()
		if ai != aj {
			return ai
		}

		if cfg.Key == SortNone {
			fi, fj := out[i].FacebookLink != "", out[j].FacebookLink != ""
			if fi != fj {
				return fi
			}
			return false
		}

		diff := sortValue(out[i], cfg.Key) - sortValue(out[j], cfg.Key)
		if diff == 0 {
			return false
		}
		if cfg.Desc {
			return diff > 0
		}
		return diff < 0
	})

	return out
}

func sortValue(l models.Listing, key SortKey) float64 {
	switch key {
	case SortPrice:
		return l.Price
	case SortPricePerSqm:
		return l.PricePerSqm
	case SortLotArea:
		return l.LotArea
	case SortFloorArea:
		return l.FloorArea
	}
	return 0
}
