package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/noelk8888/realestate/models"
	"github.com/noelk8888/realestate/search"
	"github.com/noelk8888/realestate/utils"
)

// cacheTTL bounds how long a cached search response stays valid.
const cacheTTL = 10 * time.Minute

// Server exposes the search and filter pipeline over a small JSON API.
// The dataset is immutable for the process lifetime, so handlers share it
// without locking.
type Server struct {
	listings []models.Listing
	tuning   search.Tuning
	logger   *utils.Logger
	redis    *redis.Client // nil disables response caching
}

// New creates a Server over an already-loaded dataset. Pass a nil redis
// client to run without the response cache.
func New(listings []models.Listing, tuning search.Tuning, logger *utils.Logger, redisClient *redis.Client) *Server {
	return &Server{
		listings: listings,
		tuning:   tuning,
		logger:   logger,
		redis:    redisClient,
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/search", s.handleSearch).Methods(http.MethodGet)
	router.HandleFunc("/api/listings", s.handleSummary).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
