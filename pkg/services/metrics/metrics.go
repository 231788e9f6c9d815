package metrics

import (
	"sort"

	"github.com/fin-tools/ledger-lens/pkg/models/domain"
)

// OtherBucketName labels the synthetic entry that absorbs everything
// below the top-N cut.
const OtherBucketName = "Other Expenses"

// TopNWithOther ranks expense items descending by value and buckets
// the remainder into one synthetic "Other Expenses" entry appended
// last. Ties keep their original order (stable sort), so repeated runs
// over the same report rank identically. With n or fewer items the
// sorted input comes back unchanged, no synthetic entry.
func TopNWithOther(items []domain.ExpenseItem, n int) []domain.ExpenseItem {
	if len(items) == 0 || n < 0 {
		return nil
	}

	ranked := make([]domain.ExpenseItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) <= n {
		return ranked
	}

	var other float64
	for _, item := range ranked[n:] {
		other += item.Value
	}

	top := ranked[:n:n]
	return append(top, domain.ExpenseItem{Name: OtherBucketName, Value: other})
}

// GrowthRate is the percentage change from previous to current. A zero
// previous period clamps the result to 0 rather than letting Inf/NaN
// leak into the dashboard; that clamp is a display decision, not a
// mathematical rate.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// ProfitMargin is net profit as a percentage of revenue, 0 when
// revenue is not positive.
func ProfitMargin(netProfit, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return netProfit / revenue * 100
}

// SeriesGrowth compares the two most recent adjacent periods of a
// series. Shorter series report 0, matching the empty state.
func SeriesGrowth(s domain.PeriodSeries) float64 {
	previous, current, ok := s.LastTwo()
	if !ok {
		return 0
	}
	return GrowthRate(current, previous)
}
