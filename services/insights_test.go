package services

import (
	"testing"

	"github.com/noelk8888/realestate/models"
	"github.com/noelk8888/realestate/utils"
)

func TestGenerateInsights(t *testing.T) {
	listings := []models.Listing{
		{ID: "A", Price: 3_000_000, Region: "NCR", Status: "available"},
		{ID: "B", Price: 9_000_000, Region: "NCR", Status: "SOLD", Sponsored: true},
		{ID: "C", LeasePrice: 25_000, Region: "Bicol", Status: "available"},
	}

	r := NewInsightService(utils.NewLogger()).Generate(listings)

	if r.TotalListings != 3 || r.AvailableCount != 2 {
		t.Errorf("counts = (%d total, %d available); want (3, 2)", r.TotalListings, r.AvailableCount)
	}
	if r.ForSaleCount != 2 || r.ForLeaseCount != 1 || r.SponsoredCount != 1 {
		t.Errorf("tallies = (sale %d, lease %d, sponsored %d); want (2, 1, 1)",
			r.ForSaleCount, r.ForLeaseCount, r.SponsoredCount)
	}
	if r.AveragePrice != 6_000_000 || r.MinPrice != 3_000_000 || r.MaxPrice != 9_000_000 {
		t.Errorf("price stats = (avg %.0f, min %.0f, max %.0f)", r.AveragePrice, r.MinPrice, r.MaxPrice)
	}
	if r.MostExpensive == nil || r.MostExpensive.ID != "B" {
		t.Errorf("MostExpensive = %v; want B", r.MostExpensive)
	}
	if r.ListingsByRegion["NCR"] != 2 || r.ListingsByRegion["Bicol"] != 1 {
		t.Errorf("region counts = %v", r.ListingsByRegion)
	}
}

func TestGenerateInsightsSinglePricedListing(t *testing.T) {
	r := NewInsightService(utils.NewLogger()).Generate([]models.Listing{
		{ID: "ONLY", Price: 5_000_000, Status: "available"},
	})

	if r.MostExpensive == nil || r.MostExpensive.ID != "ONLY" {
		t.Errorf("MostExpensive = %v; want the only priced listing", r.MostExpensive)
	}
	if r.MinPrice != 5_000_000 || r.MaxPrice != 5_000_000 || r.AveragePrice != 5_000_000 {
		t.Errorf("stats = (%.0f, %.0f, %.0f); want 5000000 across the board",
			r.MinPrice, r.MaxPrice, r.AveragePrice)
	}
}

func TestGenerateInsightsEmptyDataset(t *testing.T) {
	r := NewInsightService(utils.NewLogger()).Generate(nil)

	if r.TotalListings != 0 || r.AveragePrice != 0 || r.MostExpensive != nil {
		t.Errorf("empty dataset report: %+v", r)
	}
	if r.ListingsByRegion == nil {
		t.Error("ListingsByRegion should be an empty map, not nil")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.006, 1.01},
		{2.344, 2.34},
		{3, 3},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("National Capital Region Extended", 10); got != "Nationa..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("NCR", 10); got != "NCR" {
		t.Errorf("truncate left short string as %q", got)
	}
}
