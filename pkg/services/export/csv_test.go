package export

import (
	"testing"
	"time"

	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyCSV(t *testing.T) {
	view := domain.MonthlyView{
		PeriodLabels: []string{"Jan"},
		Rows: []domain.FlatRow{
			{Label: "Sales", Values: []string{"1,000"}},
		},
		HasData: true,
	}

	assert.Equal(t, "Item,Jan\nSales,1,000", MonthlyCSV(view))
}

func TestMonthlyCSV_MultipleRowsAndPeriods(t *testing.T) {
	view := domain.MonthlyView{
		PeriodLabels: []string{"Jan 2026", "Feb 2026"},
		Rows: []domain.FlatRow{
			{Label: "Income", IsHeader: true},
			{Label: "Sales", Values: []string{"1,000", "1,200"}},
			{Label: "Total Income", Values: []string{"1,000", "1,200"}, IsTotal: true},
		},
	}

	want := "Item,Jan 2026,Feb 2026\n" +
		"Income\n" +
		"Sales,1,000,1,200\n" +
		"Total Income,1,000,1,200"
	assert.Equal(t, want, MonthlyCSV(view))
}

func TestMonthlyCSV_EmptyView(t *testing.T) {
	assert.Equal(t, "Item", MonthlyCSV(domain.MonthlyView{}))
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, time.January, 31, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "monthly_breakdown_2026-01-31.csv", Filename(at))
}
