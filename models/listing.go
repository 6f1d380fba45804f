package models

import "strings"

// PropertyType is inferred from the lot/floor area columns, never stored
// directly in the sheet.
type PropertyType string

const (
	TypeCondo   PropertyType = "Condo"
	TypeLot     PropertyType = "Lot"
	TypeUnknown PropertyType = "Unknown"
)

// StatusAvailable is the only status that keeps a listing in the normal
// result flow; anything else sorts to the end and is shown with a banner.
const StatusAvailable = "available"

// Listing is one property record from the sheet export. The dataset is loaded
// once per session and held immutable; every pipeline stage derives new slices
// instead of mutating these.
type Listing struct {
	ID string `json:"id"` // listing code, e.g. "G12345"; authoritative for exact-match lookups

	Summary        string `json:"summary"`        // full description text, used for search and copy
	DisplaySummary string `json:"displaySummary"` // description without the leading listing-code line

	Price            float64 `json:"price"`      // 0 = not for sale
	LeasePrice       float64 `json:"leasePrice"` // 0 = not for lease
	PricePerSqm      float64 `json:"pricePerSqm"`
	LeasePricePerSqm float64 `json:"leasePricePerSqm"`
	LotArea          float64 `json:"lotArea"`   // sqm, 0 = absent
	FloorArea        float64 `json:"floorArea"` // sqm, 0 = absent

	Type     PropertyType `json:"type"`
	SaleType string       `json:"saleType"` // "FOR SALE", "FOR LEASE", "SALE/LEASE" or ""; display only
	Category string       `json:"category"` // concatenated RESIDENTIAL/COMMERCIAL/INDUSTRIAL/AGRICULTURAL markers
	Badge    string       `json:"badge"`    // category badge column, checked alongside Category when filtering

	Region   string `json:"region"`
	Province string `json:"province"`
	City     string `json:"city"`
	Barangay string `json:"barangay"`
	Area     string `json:"area"`
	Building string `json:"building"`

	Broker   string `json:"broker"`   // owner/broker notes column
	Comments string `json:"comments"` // free-text comments column

	FacebookLink string `json:"facebookLink"`
	PhotoLink    string `json:"photoLink"`
	MapLink      string `json:"mapLink"`

	IsDirect  bool   `json:"isDirect"` // no broker
	Sponsored bool   `json:"sponsored"`
	Status    string `json:"status"` // availability; see StatusAvailable

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Available reports whether the listing is in the default "available" state.
func (l *Listing) Available() bool {
	return strings.EqualFold(strings.TrimSpace(l.Status), StatusAvailable)
}

// SearchText returns the lowercase haystack the scorer matches query tokens
// against: every geographic field, the description, the free-text passthrough
// columns and the listing code.
func (l *Listing) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		l.City,
		l.Province,
		l.Barangay,
		l.Region,
		l.Area,
		l.Building,
		l.Summary,
		l.Broker,
		l.Badge,
		l.Comments,
		l.ID,
	}, " "))
}

// LocationText returns the lowercase city/province/barangay haystack used for
// the location-specific score bonus.
func (l *Listing) LocationText() string {
	return strings.ToLower(l.City + " " + l.Province + " " + l.Barangay)
}

// CategoryText returns the lowercase combined category+badge field the
// category filter substring-matches against.
func (l *Listing) CategoryText() string {
	return strings.ToLower(strings.TrimSpace(l.Category) + " " + strings.TrimSpace(l.Badge))
}

// DeriveSaleType computes the display sale-type string purely from price
// presence.
func DeriveSaleType(price, leasePrice float64) string {
	switch {
	case price > 0 && leasePrice > 0:
		return "SALE/LEASE"
	case price > 0:
		return "FOR SALE"
	case leasePrice > 0:
		return "FOR LEASE"
	}
	return ""
}

// InferType classifies a listing from its area columns: no lot area means a
// condo unit, lot area without floor area means raw land.
func InferType(lotArea, floorArea float64) PropertyType {
	if lotArea == 0 {
		return TypeCondo
	}
	if floorArea == 0 {
		return TypeLot
	}
	return TypeUnknown
}
