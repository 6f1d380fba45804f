package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/noelk8888/realestate/filter"
	"github.com/noelk8888/realestate/models"
	"github.com/noelk8888/realestate/search"
)

// searchResponse is the JSON shape handed to the presentation layer.
type searchResponse struct {
	Items        []models.Listing  `json:"items"`
	Page         int               `json:"page"`
	TotalPages   int               `json:"totalPages"`
	TotalResults int               `json:"totalResults"`
	Options      filter.GeoOptions `json:"options"`
}

type summaryResponse struct {
	TotalListings int `json:"totalListings"`
}

// handleSearch runs the full pipeline: free-text search when q is present,
// then the deterministic filter/sort/paginate stage. The query string itself
// is the serialized filter state, which also makes it the cache key.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	cacheKey := searchCacheKey(query)

	if s.redis != nil {
		cached, err := s.redis.Get(r.Context(), cacheKey).Result()
		if err == nil {
			s.logger.Debug("[server] cache hit: %s", cacheKey)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(cached))
			return
		}
		if err != redis.Nil {
			s.logger.Warn("[server] redis get failed for %s: %v", cacheKey, err)
		}
	}

	q := query.Get("q")
	minScore := intParam(query, "relevance", 0)

	results := s.listings
	if strings.TrimSpace(q) != "" {
		results = search.SearchListingsTuned(s.listings, q, minScore, s.tuning)
	}

	st := stateFromQuery(query)
	view := filter.Recompute(results, st)

	resp := searchResponse{
		Items:        view.PageItems,
		Page:         view.Page,
		TotalPages:   view.TotalPages,
		TotalResults: view.TotalResults,
		Options:      view.Options,
	}
	if resp.Items == nil {
		resp.Items = []models.Listing{}
	}

	body, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("[server] encode response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	if s.redis != nil {
		if err := s.redis.Set(r.Context(), cacheKey, body, cacheTTL).Err(); err != nil {
			s.logger.Warn("[server] redis set failed for %s: %v", cacheKey, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summaryResponse{TotalListings: len(s.listings)})
}

// stateFromQuery deserializes the filter-panel state from URL parameters.
// Unknown or malformed values fall back to "unconstrained".
func stateFromQuery(query url.Values) filter.State {
	st := filter.State{
		Query:              query.Get("q"),
		Category:           query.Get("category"),
		Region:             query.Get("region"),
		Province:           query.Get("province"),
		City:               query.Get("city"),
		Barangay:           query.Get("barangay"),
		DirectOnly:         boolParam(query, "direct"),
		IncludeUnavailable: boolParam(query, "includeUnavailable"),
		Page:               intParam(query, "page", 1),
	}

	switch strings.ToLower(query.Get("sale")) {
	case "sale":
		st.SaleMode = filter.SaleModeSale
	case "lease":
		st.SaleMode = filter.SaleModeLease
	case "sale-lease", "both":
		st.SaleMode = filter.SaleModeBoth
	}

	st.Price = rangeParam(query, "minPrice", "maxPrice")
	st.PricePerSqm = rangeParam(query, "minSqmPrice", "maxSqmPrice")
	st.LotArea = rangeParam(query, "minLotArea", "maxLotArea")
	st.FloorArea = rangeParam(query, "minFloorArea", "maxFloorArea")

	switch query.Get("sort") {
	case "price":
		st.Sort.Key = filter.SortPrice
	case "pricePerSqm":
		st.Sort.Key = filter.SortPricePerSqm
	case "lotArea":
		st.Sort.Key = filter.SortLotArea
	case "floorArea":
		st.Sort.Key = filter.SortFloorArea
	}
	st.Sort.Desc = query.Get("dir") != "asc"

	return st
}

func rangeParam(query url.Values, minKey, maxKey string) filter.Range {
	var r filter.Range
	if v, err := strconv.ParseFloat(query.Get(minKey), 64); err == nil {
		r.Min = &v
	}
	if v, err := strconv.ParseFloat(query.Get(maxKey), 64); err == nil {
		r.Max = &v
	}
	return r
}

func intParam(query url.Values, key string, fallback int) int {
	if n, err := strconv.Atoi(query.Get(key)); err == nil {
		return n
	}
	return fallback
}

func boolParam(query url.Values, key string) bool {
	b, _ := strconv.ParseBool(query.Get(key))
	return b
}

// searchCacheKey hashes the sorted query parameters so equivalent requests
// share one cache entry regardless of parameter order.
func searchCacheKey(query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		values := query[key]
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}

	sum := sha256.Sum256([]byte(strings.TrimSuffix(sb.String(), "&")))
	return "search:" + hex.EncodeToString(sum[:])
}
