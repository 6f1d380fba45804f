package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/noelk8888/realestate/models"
)

func TestCSVWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}

	listings := []models.Listing{
		{
			ID: "G1", SaleType: "FOR SALE", Price: 4_200_000, PricePerSqm: 28_000,
			LotArea: 150, Type: models.TypeLot, Category: "RESIDENTIAL",
			Region: "NCR", Province: "Metro Manila", City: "Caloocan", Status: "available",
		},
		{ID: "G2", SaleType: "FOR LEASE", LeasePrice: 25_000, Type: models.TypeCondo, Status: "SOLD"},
	}
	if err := w.Write(listings); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 3 {
		t.Fatalf("file has %d rows; want header + 2", len(rows))
	}
	if rows[0][0] != "id" || rows[0][13] != "status" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "G1" || rows[1][2] != "4200000" || rows[1][11] != "Caloocan" {
		t.Errorf("first row = %v", rows[1])
	}
	if rows[2][0] != "G2" || rows[2][3] != "25000" || rows[2][13] != "SOLD" {
		t.Errorf("second row = %v", rows[2])
	}
}

func TestCSVWriterEmptyExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(nil); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("export file is missing the header row")
	}
}
