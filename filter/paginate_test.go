package filter

import (
	"fmt"
	"testing"

	"github.com/noelk8888/realestate/models"
)

func numberedListings(n int) []models.Listing {
	out := make([]models.Listing, n)
	for i := range out {
		out[i] = models.Listing{ID: fmt.Sprintf("G%02d", i+1), Status: "available"}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{14, 1},
		{15, 2},
		{28, 2},
		{29, 3},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.count); got != tt.want {
			t.Errorf("TotalPages(%d) = %d; want %d", tt.count, got, tt.want)
		}
	}
}

func TestPaginate(t *testing.T) {
	listings := numberedListings(15)

	page1 := paginate(listings, 1)
	if len(page1) != PageSize {
		t.Fatalf("page 1 has %d items; want %d", len(page1), PageSize)
	}
	if page1[0].ID != "G01" || page1[13].ID != "G14" {
		t.Errorf("page 1 spans %s..%s; want G01..G14", page1[0].ID, page1[13].ID)
	}

	page2 := paginate(listings, 2)
	if len(page2) != 1 || page2[0].ID != "G15" {
		t.Errorf("page 2 = %v; want [G15]", ids(page2))
	}

	if got := paginate(listings, 3); len(got) != 0 {
		t.Errorf("page past the end returned %d items", len(got))
	}
}

func TestPaginateClampsLowPages(t *testing.T) {
	listings := numberedListings(3)

	for _, page := range []int{0, -5} {
		got := paginate(listings, page)
		if !equalIDs(got, []string{"G01", "G02", "G03"}) {
			t.Errorf("page %d = %v; want the first page", page, ids(got))
		}
	}
}

func TestPaginateCopies(t *testing.T) {
	listings := numberedListings(2)

	page := paginate(listings, 1)
	page[0].ID = "MUTATED"
	if listings[0].ID != "G01" {
		t.Error("mutating a page leaked into the source slice")
	}
}
