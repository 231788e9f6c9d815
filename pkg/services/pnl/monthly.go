package pnl

import (
	"strings"

	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/models/report"
	"github.com/fin-tools/ledger-lens/pkg/services/reporttree"
)

// BuildMonthly assembles the month-by-month breakdown: period column
// headers from the report's field metadata plus the fully flattened
// row list, section nesting preserved as indentation level.
func BuildMonthly(resp *report.Response) domain.MonthlyView {
	r := resp.First()
	if r == nil {
		return domain.MonthlyView{}
	}

	return domain.MonthlyView{
		PeriodLabels: PeriodLabels(r),
		Rows:         reporttree.Flatten(r.Rows, 0),
		HasData:      true,
	}
}

// FilterRows narrows a monthly view to the rows whose label or any
// period value contains the query, case-insensitively. An empty query
// returns the view unchanged.
func FilterRows(view domain.MonthlyView, query string) domain.MonthlyView {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return view
	}

	filtered := domain.MonthlyView{
		PeriodLabels: view.PeriodLabels,
		HasData:      view.HasData,
	}
	for _, row := range view.Rows {
		if rowMatches(row, query) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered
}

func rowMatches(row domain.FlatRow, query string) bool {
	if strings.Contains(strings.ToLower(row.Label), query) {
		return true
	}
	for _, v := range row.Values {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}
