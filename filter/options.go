package filter

import (
	"sort"
	"strings"

	"github.com/noelk8888/realestate/models"
)

// defaultUpperBound caps derived range-slider bounds when the filtered set is
// empty, so the UI never sees NaN or an inverted slider.
const defaultUpperBound = 100_000_000

// GeoOptions holds the dropdown option lists for the geography cascade.
type GeoOptions struct {
	Regions   []string
	Provinces []string
	Cities    []string
	Barangays []string
}

// geoOptions derives the cascade dropdowns from the listings that survived
// the sale-mode and category filters but not yet the geography filters:
// province options depend on the selected region, city options on
// region+province, and so on. Regions are ordered by descending listing
// count (ties alphabetical); the rest alphabetically.
func geoOptions(listings []models.Listing, st State) GeoOptions {
	var opts GeoOptions

	regionCounts := make(map[string]int)
	provinces := make(map[string]bool)
	cities := make(map[string]bool)
	barangays := make(map[string]bool)

	for _, l := range listings {
		if l.Region != "" {
			regionCounts[l.Region]++
		}

		if st.Region != "" && !strings.EqualFold(l.Region, st.Region) {
			continue
		}
		if l.Province != "" {
			provinces[l.Province] = true
		}

		if st.Province != "" && !strings.EqualFold(l.Province, st.Province) {
			continue
		}
		if l.City != "" {
			cities[l.City] = true
		}

		if st.City != "" && !strings.EqualFold(l.City, st.City) {
			continue
		}
		if l.Barangay != "" {
			barangays[l.Barangay] = true
		}
	}

	for region := range regionCounts {
		opts.Regions = append(opts.Regions, region)
	}
	sort.Slice(opts.Regions, func(i, j int) bool {
		ci, cj := regionCounts[opts.Regions[i]], regionCounts[opts.Regions[j]]
		if ci != cj {
			return ci > cj
		}
		return opts.Regions[i] < opts.Regions[j]
	})

	opts.Provinces = sortedKeys(provinces)
	opts.Cities = sortedKeys(cities)
	opts.Barangays = sortedKeys(barangays)
	return opts
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RangeBounds computes the min/max of a numeric column over a result set,
// for seeding range-slider endpoints. An empty set falls back to
// [0, defaultUpperBound] instead of producing garbage bounds.
func RangeBounds(listings []models.Listing, value func(models.Listing) float64) (min, max float64) {
	if len(listings) == 0 {
		return 0, defaultUpperBound
	}

	min = value(listings[0])
	max = min
	for _, l := range listings[1:] {
		v := value(l)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
