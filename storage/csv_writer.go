package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/noelk8888/realestate/models"
)

// CSVWriter exports a result set to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{
		"id", "sale_type", "price", "lease_price", "price_per_sqm",
		"lot_area", "floor_area", "type", "category",
		"region", "province", "city", "barangay", "status",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends the given listings to the export file.
func (c *CSVWriter) Write(listings []models.Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range listings {
		row := []string{
			l.ID,
			l.SaleType,
			formatNumber(l.Price),
			formatNumber(l.LeasePrice),
			formatNumber(l.PricePerSqm),
			formatNumber(l.LotArea),
			formatNumber(l.FloorArea),
			string(l.Type),
			l.Category,
			l.Region,
			l.Province,
			l.City,
			l.Barangay,
			l.Status,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
