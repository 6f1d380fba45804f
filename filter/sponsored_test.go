package filter

import (
	"testing"

	"github.com/noelk8888/realestate/models"
)

func TestSponsoredPool(t *testing.T) {
	listings := []models.Listing{
		{ID: "S1", Sponsored: true, Status: "available"},
		{ID: "S2", Sponsored: true, Status: "SOLD"},
		{ID: "N1", Sponsored: false, Status: "available"},
	}

	pool := sponsoredPool(listings)
	if !equalIDs(pool, []string{"S1"}) {
		t.Errorf("pool = %v; want [S1] (sponsored and available only)", ids(pool))
	}
}

func TestInjectSponsoredSlot(t *testing.T) {
	page := []models.Listing{
		{ID: "P1", City: "Makati"},
		{ID: "P2", City: "Makati"},
		{ID: "P3", City: "Makati"},
		{ID: "P4", City: "Makati"},
	}
	pool := []models.Listing{
		{ID: "S1", City: "Makati", Sponsored: true},
	}

	got := injectSponsored(page, pool, 1, 5)
	if !equalIDs(got, []string{"P1", "P2", "S1", "P3", "P4"}) {
		t.Errorf("got %v; want the sponsored pick in the third slot", ids(got))
	}
}

func TestInjectSponsoredSingleItemPage(t *testing.T) {
	page := []models.Listing{{ID: "P1", City: "Makati"}}
	pool := []models.Listing{{ID: "S1", City: "Davao", Sponsored: true}}

	got := injectSponsored(page, pool, 1, 5)
	if !equalIDs(got, []string{"P1", "S1"}) {
		t.Errorf("got %v; want [P1 S1], the sponsored slot is never first", ids(got))
	}
}

func TestInjectSponsoredCityBeatsRegion(t *testing.T) {
	page := []models.Listing{
		{ID: "P1", City: "Makati", Region: "NCR"},
		{ID: "P2", City: "Makati", Region: "NCR"},
		{ID: "P3", City: "Makati", Region: "NCR"},
	}
	pool := []models.Listing{
		{ID: "REGION", City: "Quezon City", Region: "NCR", Sponsored: true},
		{ID: "CITY", City: "Makati", Region: "NCR", Sponsored: true},
	}

	// Only CITY shares a city with the page, so it is the lone candidate
	// whatever the rotation inputs say.
	for day := 1; day <= 4; day++ {
		got := injectSponsored(page, pool, 1, day)
		if got[2].ID != "CITY" {
			t.Fatalf("day %d: slot holds %s; want CITY", day, got[2].ID)
		}
	}
}

func TestInjectSponsoredRotation(t *testing.T) {
	page := []models.Listing{
		{ID: "P1", City: "Makati"},
		{ID: "P2", City: "Makati"},
		{ID: "P3", City: "Makati"},
	}
	pool := []models.Listing{
		{ID: "S1", City: "Makati", Sponsored: true},
		{ID: "S2", City: "Makati", Sponsored: true},
		{ID: "S3", City: "Makati", Sponsored: true},
	}

	tests := []struct {
		pageNum, day int
		want         string
	}{
		{1, 5, "S1"}, // (1+5)%3 == 0
		{2, 5, "S2"},
		{3, 5, "S3"},
		{1, 6, "S2"}, // next day rotates
	}

	for _, tt := range tests {
		got := injectSponsored(page, pool, tt.pageNum, tt.day)
		if got[2].ID != tt.want {
			t.Errorf("page %d day %d: slot holds %s; want %s", tt.pageNum, tt.day, got[2].ID, tt.want)
		}
	}
}

func TestInjectSponsoredDeduplicates(t *testing.T) {
	page := []models.Listing{
		{ID: "P1", City: "Makati"},
		{ID: "S1", City: "Makati", Sponsored: true},
		{ID: "P2", City: "Makati"},
		{ID: "P3", City: "Makati"},
	}
	pool := []models.Listing{{ID: "S1", City: "Makati", Sponsored: true}}

	got := injectSponsored(page, pool, 1, 5)
	if !equalIDs(got, []string{"P1", "P2", "S1", "P3"}) {
		t.Errorf("got %v; want the organic copy removed and one S1 in the slot", ids(got))
	}
}

func TestInjectSponsoredNoOps(t *testing.T) {
	page := []models.Listing{{ID: "P1"}}

	if got := injectSponsored(page, nil, 1, 5); !equalIDs(got, []string{"P1"}) {
		t.Errorf("empty pool changed the page: %v", ids(got))
	}
	if got := injectSponsored(nil, []models.Listing{{ID: "S1"}}, 1, 5); len(got) != 0 {
		t.Errorf("empty page gained items: %v", ids(got))
	}
}
