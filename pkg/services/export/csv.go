// Package export builds the downloadable CSV for the monthly
// breakdown view.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/fin-tools/ledger-lens/pkg/models/domain"
)

// MonthlyCSV renders a monthly view as CSV text: a header row of
// "Item" plus the period labels, then one row per flattened line item
// with its already-formatted display values. Cells are joined with
// plain commas and no quoting; the report vocabulary is controlled
// upstream, so values never need escaping beyond what they carry.
func MonthlyCSV(view domain.MonthlyView) string {
	lines := make([]string, 0, len(view.Rows)+1)

	header := append([]string{"Item"}, view.PeriodLabels...)
	lines = append(lines, strings.Join(header, ","))

	for _, row := range view.Rows {
		line := append([]string{row.Label}, row.Values...)
		lines = append(lines, strings.Join(line, ","))
	}

	return strings.Join(lines, "\n")
}

// Filename names the download after the export date, e.g.
// "monthly_breakdown_2026-01-31.csv".
func Filename(now time.Time) string {
	return fmt.Sprintf("monthly_breakdown_%s.csv", now.Format("2006-01-02"))
}
