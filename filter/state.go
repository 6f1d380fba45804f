package filter

// SaleMode selects which price column drives the sale/lease filter and the
// price-based range filters. The latest revision derives it from price
// presence, not from the stored sale-type string.
type SaleMode string

const (
	SaleModeAny   SaleMode = ""
	SaleModeSale  SaleMode = "sale"
	SaleModeLease SaleMode = "lease"
	SaleModeBoth  SaleMode = "sale-lease"
)

// SortKey names the numeric column an explicit sort runs on. An empty key
// keeps the current order (relevance order after a search, dataset order
// otherwise).
type SortKey string

const (
	SortNone        SortKey = ""
	SortPrice       SortKey = "price"
	SortPricePerSqm SortKey = "pricePerSqm"
	SortLotArea     SortKey = "lotArea"
	SortFloorArea   SortKey = "floorArea"
)

// SortConfig pairs a sort key with its direction.
type SortConfig struct {
	Key  SortKey
	Desc bool
}

// Range is an optional inclusive numeric bound. Nil ends are unbounded.
type Range struct {
	Min *float64
	Max *float64
}

// Active reports whether either bound is set.
func (r Range) Active() bool { return r.Min != nil || r.Max != nil }

// Contains reports whether v satisfies both bounds.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// State is the full, serializable filter-panel state. Recompute is a pure
// function of (results, State), so any caller (UI, HTTP handler, test) can
// drive the pipeline without shared mutable state.
type State struct {
	Query string // raw query text, only consulted for the listing-code bypass

	SaleMode SaleMode
	Category string // residential / commercial / industrial / agricultural, "" = all

	Region   string
	Province string
	City     string
	Barangay string

	DirectOnly bool

	// IncludeUnavailable keeps SOLD/RENTED/etc. listings in the result set;
	// the sort stage still pushes them after every available listing.
	IncludeUnavailable bool

	Price       Range // Price or LeasePrice depending on SaleMode
	PricePerSqm Range // same toggle
	LotArea     Range
	FloorArea   Range

	Sort SortConfig
	Page int // 1-indexed; values below 1 are treated as 1
}
