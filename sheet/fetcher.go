package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/noelk8888/realestate/models"
	"github.com/noelk8888/realestate/utils"
)

// Fetcher loads the listing dataset from the sheet's CSV export URL.
// It is used exactly once per session, at startup.
type Fetcher struct {
	url    string
	client *http.Client
	retry  *utils.RetryConfig
	logger *utils.Logger
}

// NewFetcher creates a Fetcher for the given export URL.
func NewFetcher(url string, timeout time.Duration, retry *utils.RetryConfig, logger *utils.Logger) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		retry:  retry,
		logger: logger,
	}
}

// Fetch downloads and parses the sheet. Only rows with a sale or lease price
// enter the working set. Fetch failures are recoverable for the caller: the
// engine runs fine on an empty dataset.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.Listing, error) {
	var body []byte
	err := f.retry.Do("sheet fetch", func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
		if err != nil {
			return fmt.Errorf("sheet: build request: %w", err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("sheet: get: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("sheet: unexpected status %s", resp.Status)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("sheet: read body: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	listings, err := ParseCSV(body)
	if err != nil {
		return nil, err
	}

	f.logger.Info("[sheet] Loaded %d listings from sheet", len(listings))
	return listings, nil
}

// ParseCSV converts the raw export into the working listing set: skip the
// header row, normalize every data row, keep rows priced for sale or lease.
func ParseCSV(data []byte) ([]models.Listing, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sheet: parse csv: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var listings []models.Listing
	for _, row := range rows[1:] {
		l := NormalizeRow(row)
		if l.Price > 0 || l.LeasePrice > 0 {
			listings = append(listings, l)
		}
	}
	return listings, nil
}
