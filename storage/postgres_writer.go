package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/noelk8888/realestate/models"
)

// PostgresWriter mirrors the loaded dataset into PostgreSQL so other tools
// can query it; the search engine itself never reads from the database.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			listing_code  VARCHAR(20)   PRIMARY KEY,
			price         NUMERIC(14,2) NOT NULL DEFAULT 0,
			lease_price   NUMERIC(14,2) NOT NULL DEFAULT 0,
			price_per_sqm NUMERIC(14,2) NOT NULL DEFAULT 0,
			lot_area      NUMERIC(12,2) NOT NULL DEFAULT 0,
			floor_area    NUMERIC(12,2) NOT NULL DEFAULT 0,
			property_type VARCHAR(20)   NOT NULL DEFAULT '',
			category      TEXT          NOT NULL DEFAULT '',
			region        TEXT          NOT NULL DEFAULT '',
			province      TEXT          NOT NULL DEFAULT '',
			city          TEXT          NOT NULL DEFAULT '',
			barangay      TEXT          NOT NULL DEFAULT '',
			status        TEXT          NOT NULL DEFAULT '',
			sponsored     BOOLEAN       NOT NULL DEFAULT FALSE,
			snapshot_at   TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_listings_price  ON listings(price);
		CREATE INDEX IF NOT EXISTS idx_listings_city   ON listings(city);
		CREATE INDEX IF NOT EXISTS idx_listings_region ON listings(region);
	`)
	return err
}

// Clear deletes all existing listings from the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM listings")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts the full dataset, clearing the previous snapshot first.
func (pw *PostgresWriter) Write(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := i + batchSize
		if end > len(listings) {
			end = len(listings)
		}
		if err := pw.insertBatch(listings[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []models.Listing) error {
	const cols = 14
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, l := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for p := 0; p < cols; p++ {
			placeholders[p] = fmt.Sprintf("$%d", base+p+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			l.ID, l.Price, l.LeasePrice, l.PricePerSqm, l.LotArea, l.FloorArea,
			string(l.Type), l.Category, l.Region, l.Province, l.City, l.Barangay,
			l.Status, l.Sponsored)
	}

	query := fmt.Sprintf(`
		INSERT INTO listings (listing_code, price, lease_price, price_per_sqm,
			lot_area, floor_area, property_type, category,
			region, province, city, barangay, status, sponsored)
		VALUES %s
		ON CONFLICT (listing_code) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
