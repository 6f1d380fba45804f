package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/noelk8888/realestate/config"
	"github.com/noelk8888/realestate/filter"
	"github.com/noelk8888/realestate/models"
	"github.com/noelk8888/realestate/search"
	"github.com/noelk8888/realestate/server"
	"github.com/noelk8888/realestate/services"
	"github.com/noelk8888/realestate/sheet"
	"github.com/noelk8888/realestate/storage"
	"github.com/noelk8888/realestate/utils"
)

func main() {
	query := flag.String("q", "", "free-text search query (CLI mode)")
	relevance := flag.Int("relevance", 50, "minimum relevance score (0 = broad, 100 = exact phrase only)")
	page := flag.Int("page", 1, "result page to show (CLI mode)")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot search")
	exportPath := flag.String("out", "", "export the full result set to a CSV file")
	flag.Parse()

	logger := utils.NewLogger()
	cfg := config.Load()

	tuning := search.DefaultTuning()
	if _, err := os.Stat(cfg.TuningPath); err == nil {
		t, err := search.LoadTuning(cfg.TuningPath)
		if err != nil {
			logger.Warn("[main] Ignoring tuning file: %v", err)
		} else {
			tuning = t
			logger.Info("[main] Loaded search tuning from %s", cfg.TuningPath)
		}
	}

	listings := loadListings(cfg, logger)

	if cfg.SnapshotDB {
		snapshotListings(cfg, logger, listings)
	}

	if *serve {
		runServer(cfg, logger, tuning, listings)
		return
	}

	runSearch(cfg, logger, tuning, listings, *query, *relevance, *page, *exportPath)
}

// loadListings fetches the dataset once. A fetch failure is not fatal: the
// engine degrades to an empty dataset and the process keeps running.
func loadListings(cfg *config.Config, logger *utils.Logger) []models.Listing {
	retry := &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   time.Duration(cfg.RetryDelayMs) * time.Millisecond,
		Logger:      logger,
	}
	fetcher := sheet.NewFetcher(cfg.SheetURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second, retry, logger)

	listings, err := fetcher.Fetch(context.Background())
	if err != nil {
		logger.Error("[main] Listing fetch failed, continuing with empty dataset: %v", err)
		return nil
	}
	return listings
}

func snapshotListings(cfg *config.Config, logger *utils.Logger, listings []models.Listing) {
	pg, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		logger.Error("[main] Postgres snapshot unavailable: %v", err)
		return
	}
	if persist(logger, "Postgres snapshot", pg, listings) {
		logger.Info("[main] Snapshotted %d listings to PostgreSQL", len(listings))
	}
}

// persist writes listings through a storage backend and closes it.
func persist(logger *utils.Logger, label string, w storage.ListingWriter, listings []models.Listing) bool {
	defer w.Close()
	if err := w.Write(listings); err != nil {
		logger.Error("[main] %s failed: %v", label, err)
		return false
	}
	return true
}

func runSearch(cfg *config.Config, logger *utils.Logger, tuning search.Tuning,
	listings []models.Listing, query string, relevance, page int, exportPath string) {

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(insightSvc.Generate(listings))

	results := listings
	if query != "" {
		results = search.SearchListingsTuned(listings, query, relevance, tuning)
		logger.Info("[main] %q matched %d of %d listings (min score %d)",
			query, len(results), len(listings), relevance)
	}

	view := filter.Recompute(results, filter.State{Query: query, Page: page})

	fmt.Printf("\n  Page %d/%d — %d results\n\n", view.Page, view.TotalPages, view.TotalResults)
	for _, l := range view.PageItems {
		printListing(l)
	}

	if exportPath != "" {
		exportResults(logger, exportPath, results)
	}
}

func printListing(l models.Listing) {
	price := fmt.Sprintf("₱%.0f", l.Price)
	if l.Price == 0 && l.LeasePrice > 0 {
		price = fmt.Sprintf("₱%.0f/mo", l.LeasePrice)
	}
	fmt.Printf("  %-8s %-10s %-12s %s, %s [%s]\n",
		l.ID, l.SaleType, price, l.City, l.Province, l.Status)
}

func exportResults(logger *utils.Logger, path string, results []models.Listing) {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		logger.Error("[main] CSV export failed: %v", err)
		return
	}
	if persist(logger, "CSV export", w, results) {
		logger.Info("[main] Exported %d results to %s", len(results), path)
	}
}

func runServer(cfg *config.Config, logger *utils.Logger, tuning search.Tuning, listings []models.Listing) {
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("[main] Redis unreachable, running without response cache: %v", err)
			redisClient = nil
		} else {
			logger.Info("[main] Response cache enabled (redis at %s)", cfg.RedisAddr)
		}
	}

	srv := server.New(listings, tuning, logger, redisClient)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsOptions.Handler(srv.Router()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("[main] Serving %d listings on port %s", len(listings), cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("[main] Server error: %v", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	logger.Info("[main] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("[main] Shutdown error: %v", err)
	}
}
