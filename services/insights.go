package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/noelk8888/realestate/models"
	"github.com/noelk8888/realestate/utils"
)

// InsightReport holds the computed analytics over the loaded dataset.
type InsightReport struct {
	TotalListings    int
	AvailableCount   int
	ForSaleCount     int
	ForLeaseCount    int
	SponsoredCount   int
	AveragePrice     float64
	MinPrice         float64
	MaxPrice         float64
	MostExpensive    *models.Listing
	ListingsByRegion map[string]int
}

// InsightService summarizes the dataset after load.
type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the report. Price statistics only consider sale prices
// greater than zero; lease-only listings count toward the lease tally.
func (s *InsightService) Generate(listings []models.Listing) *InsightReport {
	report := &InsightReport{
		ListingsByRegion: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)

	var priced []*models.Listing
	for i := range listings {
		l := &listings[i]
		if l.Available() {
			report.AvailableCount++
		}
		if l.Price > 0 {
			report.ForSaleCount++
			priced = append(priced, l)
		}
		if l.LeasePrice > 0 {
			report.ForLeaseCount++
		}
		if l.Sponsored {
			report.SponsoredCount++
		}
		if l.Region != "" {
			report.ListingsByRegion[l.Region]++
		}
	}

	if len(priced) > 0 {
		report.MinPrice = priced[0].Price
		report.MaxPrice = priced[0].Price
		report.MostExpensive = priced[0]
		var total float64
		for _, l := range priced {
			total += l.Price
			if l.Price < report.MinPrice {
				report.MinPrice = l.Price
			}
			if l.Price > report.MaxPrice {
				report.MaxPrice = l.Price
				report.MostExpensive = l
			}
		}
		report.AveragePrice = round2(total / float64(len(priced)))
	}

	return report
}

// Print renders the report to stdout.
func (s *InsightService) Print(r *InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  LISTING DATASET OVERVIEW\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Counts\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total listings : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Printf("  Available      : \033[1m%d\033[0m\n", r.AvailableCount)
	fmt.Printf("  For sale       : \033[1m%d\033[0m\n", r.ForSaleCount)
	fmt.Printf("  For lease      : \033[1m%d\033[0m\n", r.ForLeaseCount)
	fmt.Printf("  Sponsored      : \033[1m%d\033[0m\n", r.SponsoredCount)
	fmt.Println()

	fmt.Printf("\033[1;33m  Sale Price Statistics\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.AveragePrice > 0 {
		fmt.Printf("  Average : \033[1;32m₱%.2f\033[0m\n", r.AveragePrice)
		fmt.Printf("  Minimum : \033[1;32m₱%.2f\033[0m\n", r.MinPrice)
		fmt.Printf("  Maximum : \033[1;32m₱%.2f\033[0m\n", r.MaxPrice)
	} else {
		fmt.Printf("  No sale price data available\n")
	}
	fmt.Println()

	if r.MostExpensive != nil {
		fmt.Printf("\033[1;33m  Most Expensive Listing\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s — %s, %s\n", r.MostExpensive.ID, r.MostExpensive.City, r.MostExpensive.Province)
		fmt.Printf("  Price : \033[1;31m₱%.2f\033[0m\n", r.MostExpensive.Price)
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Listings by Region\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.ListingsByRegion) == 0 {
		fmt.Printf("  No region data\n")
	} else {
		type regionCount struct {
			region string
			count  int
		}
		var regions []regionCount
		for region, cnt := range r.ListingsByRegion {
			regions = append(regions, regionCount{region, cnt})
		}
		sort.Slice(regions, func(i, j int) bool {
			if regions[i].count != regions[j].count {
				return regions[i].count > regions[j].count
			}
			return regions[i].region < regions[j].region
		})
		for _, rc := range regions {
			fmt.Printf("  %-30s (%d)\n", truncate(rc.region, 28), rc.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
