// Package report renders a filtered, sorted business collection as a
// human-readable text report or as CSV. Rendering stops at producing the
// string; delivery (HTTP download, file on disk) is the caller's concern.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/business-boost/api-go/models"
	"github.com/business-boost/api-go/query"
)

// MIME types for the two export formats.
const (
	MimeText = "text/plain"
	MimeCSV  = "text/csv"
)

// CSVHeader is the fixed column set of the CSV report.
const CSVHeader = "Name,Category,Rating,Review Count,Address,Phone,Active Deals"

// GenerateTextReport renders the collection as a numbered plain-text
// listing. An empty category means no filter; now stamps the header.
func GenerateTextReport(businesses []models.Business, category models.BusinessCategory, option query.SortOption, now time.Time) string {
	businesses = query.FilterByCategory(businesses, category)
	businesses = query.SortBusinesses(businesses, option)

	var b strings.Builder
	rule := strings.Repeat("=", 50)
	b.WriteString("BUSINESS BOOST REPORT\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("1/2/2006, 3:04:05 PM"))
	fmt.Fprintf(&b, "Total Businesses: %d\n", len(businesses))
	if category != "" {
		fmt.Fprintf(&b, "Category: %s\n", category)
	}
	b.WriteString("\n" + rule + "\n\n")

	for i, business := range businesses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, business.Name)
		fmt.Fprintf(&b, "   Category: %s\n", business.Category)
		fmt.Fprintf(&b, "   Rating: %.1f/5.0 (%d reviews)\n", business.AverageRating, business.ReviewCount)
		fmt.Fprintf(&b, "   Address: %s\n", business.Address)
		if business.Phone != "" {
			fmt.Fprintf(&b, "   Phone: %s\n", business.Phone)
		}
		fmt.Fprintf(&b, "   Description: %s\n", business.Description)
		fmt.Fprintf(&b, "   Active Deals: %d\n", business.ActiveDealCount())
		b.WriteString("\n")
	}

	return b.String()
}

// GenerateCSVReport renders the collection as CSV with a fixed 7-column
// header. Name and address are free text and are always quoted so embedded
// commas cannot shift columns; internal quotes are doubled.
func GenerateCSVReport(businesses []models.Business, category models.BusinessCategory, option query.SortOption) string {
	businesses = query.FilterByCategory(businesses, category)
	businesses = query.SortBusinesses(businesses, option)

	var b strings.Builder
	b.WriteString(CSVHeader + "\n")

	for _, business := range businesses {
		phone := ""
		if business.Phone != "" {
			phone = quoteCSV(business.Phone)
		}
		fmt.Fprintf(&b, "%s,%s,%.1f,%d,%s,%s,%d\n",
			quoteCSV(business.Name),
			business.Category,
			business.AverageRating,
			business.ReviewCount,
			quoteCSV(business.Address),
			phone,
			business.ActiveDealCount(),
		)
	}

	return b.String()
}

// quoteCSV wraps a field in double quotes, doubling any internal quotes.
func quoteCSV(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// WriteReportFile writes a generated report to disk under filename.
func WriteReportFile(content, filename string) error {
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", filename, err)
	}
	return nil
}
