package sheet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/noelk8888/realestate/models"
)

// Column indices (0-based) in the sheet export. Rows are positional; header
// semantics are never relied on beyond skipping row 0.
const (
	colBroker       = 10 // K
	colFacebookLink = 25 // Z
	colSummary      = 26 // AA
	colPhotoLink    = 27 // AB
	colID           = 28 // AC
	colMapLink      = 29 // AD
	colRegion       = 30 // AE
	colProvince     = 31 // AF
	colCity         = 32 // AG
	colBarangay     = 33 // AH
	colArea         = 34 // AI
	colBuilding     = 35 // AJ
	colResidential  = 36 // AK
	colCommercial   = 37 // AL
	colIndustrial   = 38 // AM
	colAgricultural = 39 // AN
	colLotArea      = 40 // AO
	colFloorArea    = 41 // AP
	colStatus       = 42 // AQ
	colBadge        = 43 // AR
	colPrice        = 44 // AS
	colPricePerSqm  = 45 // AT
	colLeasePrice   = 46 // AU
	colLeasePerSqm  = 47 // AV
	colComments     = 48 // AW
	colDirect       = 50 // AY
	colSponsored    = 55 // BD
	colCoords       = 56 // BE
)

// numberJunkRegexp strips currency markers from cells like "Php 4,200,000".
var numberJunkRegexp = regexp.MustCompile(`(?i)[ph,\s]`)

// cell reads a column tolerantly: rows shorter than the mapped width read as
// empty strings.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// parseNumber converts a price/area cell to a float, treating anything
// unparseable as 0.
func parseNumber(val string) float64 {
	if val == "" {
		return 0
	}
	cleaned := numberJunkRegexp.ReplaceAllString(val, "")
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// NormalizeRow maps one positional sheet row onto a Listing, deriving the
// sale type, category, property type and availability status along the way.
func NormalizeRow(row []string) models.Listing {
	price := parseNumber(cell(row, colPrice))
	leasePrice := parseNumber(cell(row, colLeasePrice))
	lotArea := parseNumber(cell(row, colLotArea))
	floorArea := parseNumber(cell(row, colFloorArea))

	var categories []string
	if strings.TrimSpace(cell(row, colResidential)) != "" {
		categories = append(categories, "RESIDENTIAL")
	}
	if strings.TrimSpace(cell(row, colCommercial)) != "" {
		categories = append(categories, "COMMERCIAL")
	}
	if strings.TrimSpace(cell(row, colIndustrial)) != "" {
		categories = append(categories, "INDUSTRIAL")
	}
	if strings.TrimSpace(cell(row, colAgricultural)) != "" {
		categories = append(categories, "AGRICULTURAL")
	}

	rawSummary := strings.TrimSpace(cell(row, colSummary))
	comments := cell(row, colComments)

	summary := rawSummary
	if comments != "" {
		summary = rawSummary + "\n\n" + comments
	}

	lat, lng := parseCoords(cell(row, colCoords))

	return models.Listing{
		ID:             cell(row, colID),
		Summary:        summary,
		DisplaySummary: displaySummary(rawSummary),

		Price:            price,
		LeasePrice:       leasePrice,
		PricePerSqm:      parseNumber(cell(row, colPricePerSqm)),
		LeasePricePerSqm: parseNumber(cell(row, colLeasePerSqm)),
		LotArea:          lotArea,
		FloorArea:        floorArea,

		Type:     models.InferType(lotArea, floorArea),
		SaleType: models.DeriveSaleType(price, leasePrice),
		Category: strings.Join(categories, ", "),
		Badge:    cell(row, colBadge),

		Region:   cell(row, colRegion),
		Province: cell(row, colProvince),
		City:     cell(row, colCity),
		Barangay: cell(row, colBarangay),
		Area:     cell(row, colArea),
		Building: cell(row, colBuilding),

		Broker:   cell(row, colBroker),
		Comments: comments,

		FacebookLink: cell(row, colFacebookLink),
		PhotoLink:    cell(row, colPhotoLink),
		MapLink:      cell(row, colMapLink),

		IsDirect: strings.Contains(strings.ToUpper(cell(row, colDirect)), "DIRECT") ||
			strings.Contains(strings.ToUpper(rawSummary), "DIRECT"),
		Sponsored: strings.Contains(strings.ToUpper(cell(row, colSponsored)), "SPONSOR"),
		Status:    detectStatus(cell(row, colStatus), rawSummary, comments),

		Lat: lat,
		Lng: lng,
	}
}

// displaySummary drops the leading listing-code line from the description:
// with exactly two content lines the second is the description, with more
// the last line is usually a photo link and is dropped too.
func displaySummary(rawSummary string) string {
	lines := strings.Split(rawSummary, "\n")
	var nonEmpty []int
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonEmpty = append(nonEmpty, i)
		}
	}

	if len(nonEmpty) < 2 {
		return ""
	}
	if len(nonEmpty) == 2 {
		return strings.TrimSpace(lines[nonEmpty[1]])
	}

	first := nonEmpty[0]
	last := nonEmpty[len(nonEmpty)-1]
	middle := lines[first+1 : last]
	for i, line := range middle {
		middle[i] = strings.TrimRight(line, "\r")
	}
	return strings.TrimSpace(strings.Join(middle, "\n"))
}

// detectStatus falls back to scanning the free text for sold/rented markers
// when the status cell is blank or still says available; owners frequently
// note the real state in the description before the sheet catches up.
func detectStatus(status, rawSummary, comments string) string {
	status = strings.TrimSpace(status)
	if status != "" && !strings.EqualFold(status, models.StatusAvailable) {
		return status
	}

	combined := strings.ToUpper(rawSummary) + " " + strings.ToUpper(comments)
	switch {
	case strings.Contains(combined, "SOLD"):
		return "SOLD"
	case strings.Contains(combined, "RENTED"):
		return "RENTED"
	case strings.Contains(combined, "NOT AVAILABLE"):
		return "NOT AVAILABLE"
	}
	return status
}

func parseCoords(raw string) (lat, lng float64) {
	if !strings.Contains(raw, ",") {
		return 0, 0
	}
	parts := strings.SplitN(raw, ",", 2)
	lat, _ = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, _ = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	return lat, lng
}
