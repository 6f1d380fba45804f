package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/noelk8888/realestate/filter"
	"github.com/noelk8888/realestate/models"
	"github.com/noelk8888/realestate/search"
	"github.com/noelk8888/realestate/utils"
)

func testServer() *Server {
	listings := []models.Listing{
		{ID: "G1", City: "Caloocan", Region: "NCR", Type: models.TypeLot,
			Price: 5_000_000, Summary: "Lot in Caloocan along the highway", Status: "available"},
		{ID: "G2", City: "Makati", Region: "NCR", Type: models.TypeCondo,
			Price: 9_500_000, Summary: "Studio near Ayala", Status: "available"},
		{ID: "G3", City: "Imus", Region: "Calabarzon", Type: models.TypeLot,
			Price: 2_000_000, Summary: "Corner parcel", Status: "available"},
	}
	return New(listings, search.DefaultTuning(), utils.NewLogger(), nil)
}

func getSearch(t *testing.T, srv *Server, query string) searchResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/search?"+query, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/search?%s = %d; want 200", query, rec.Code)
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = (%d, %q); want (200, ok)", rec.Code, rec.Body.String())
	}
}

func TestListingsSummary(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)

	var resp summaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalListings != 3 {
		t.Errorf("TotalListings = %d; want 3", resp.TotalListings)
	}
}

func TestSearchNoFilters(t *testing.T) {
	resp := getSearch(t, testServer(), "")

	if resp.TotalResults != 3 || resp.Page != 1 || resp.TotalPages != 1 {
		t.Errorf("totals = (%d, page %d/%d); want (3, 1/1)",
			resp.TotalResults, resp.Page, resp.TotalPages)
	}
	if len(resp.Items) != 3 {
		t.Errorf("items = %d; want 3", len(resp.Items))
	}
}

func TestSearchQueryNarrows(t *testing.T) {
	resp := getSearch(t, testServer(), "q="+url.QueryEscape("Lot in Caloocan")+"&relevance=100")

	if resp.TotalResults != 1 || resp.Items[0].ID != "G1" {
		t.Errorf("results = %d (first %v); want only G1",
			resp.TotalResults, resp.Items)
	}
}

func TestSearchGeoFilterAndOptions(t *testing.T) {
	resp := getSearch(t, testServer(), "region=NCR")

	if resp.TotalResults != 2 {
		t.Errorf("TotalResults = %d; want 2", resp.TotalResults)
	}
	// The region dropdown keeps offering every region.
	if len(resp.Options.Regions) != 2 {
		t.Errorf("Options.Regions = %v; want both regions", resp.Options.Regions)
	}
}

func TestSearchEmptyResultIsNotNull(t *testing.T) {
	resp := getSearch(t, testServer(), "region=Mimaropa")
	if resp.Items == nil {
		t.Error("items must serialize as [] for empty result sets")
	}
}

func TestStateFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("q", "caloocan")
	query.Set("sale", "lease")
	query.Set("category", "residential")
	query.Set("region", "NCR")
	query.Set("direct", "true")
	query.Set("includeUnavailable", "1")
	query.Set("page", "3")
	query.Set("minPrice", "1000000")
	query.Set("maxPrice", "5000000")
	query.Set("sort", "price")
	query.Set("dir", "asc")

	st := stateFromQuery(query)

	if st.Query != "caloocan" || st.SaleMode != filter.SaleModeLease || st.Category != "residential" {
		t.Errorf("basic fields = %+v", st)
	}
	if !st.DirectOnly || !st.IncludeUnavailable || st.Page != 3 {
		t.Errorf("flags = (direct %v, unavailable %v, page %d)", st.DirectOnly, st.IncludeUnavailable, st.Page)
	}
	if st.Price.Min == nil || *st.Price.Min != 1_000_000 || st.Price.Max == nil || *st.Price.Max != 5_000_000 {
		t.Errorf("price range = %+v", st.Price)
	}
	if st.Sort.Key != filter.SortPrice || st.Sort.Desc {
		t.Errorf("sort = %+v; want ascending price", st.Sort)
	}
}

func TestStateFromQueryDefaults(t *testing.T) {
	st := stateFromQuery(url.Values{})

	if st.SaleMode != filter.SaleModeAny || st.Page != 1 || st.Price.Active() {
		t.Errorf("defaults = %+v", st)
	}
	if st.Sort.Key != filter.SortNone || !st.Sort.Desc {
		t.Errorf("default sort = %+v; want no key, descending", st.Sort)
	}
}

func TestSearchCacheKeyIgnoresParamOrder(t *testing.T) {
	a, _ := url.ParseQuery("q=condo&region=NCR&page=2")
	b, _ := url.ParseQuery("page=2&q=condo&region=NCR")
	c, _ := url.ParseQuery("q=condo&region=NCR&page=3")

	if searchCacheKey(a) != searchCacheKey(b) {
		t.Error("parameter order changed the cache key")
	}
	if searchCacheKey(a) == searchCacheKey(c) {
		t.Error("different states collided on one cache key")
	}
}
