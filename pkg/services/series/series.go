package series

import (
	"github.com/fin-tools/ledger-lens/pkg/models/domain"
)

// Zip aligns values to period labels positionally. The upstream report
// guarantees that the period-label row and every data row share column
// order, so alignment is by index, never by label. Missing trailing
// values default to 0; surplus values are dropped.
func Zip(periodLabels []string, values []float64) domain.PeriodSeries {
	if len(periodLabels) == 0 {
		return nil
	}
	s := make(domain.PeriodSeries, 0, len(periodLabels))
	for i, label := range periodLabels {
		var v float64
		if i < len(values) {
			v = values[i]
		}
		s = append(s, domain.PeriodPoint{Label: label, Value: v})
	}
	return s
}

// FilterByPeriods keeps only the points whose label is in selected,
// preserving the original order. Callers use it to narrow a full
// series to a primary period plus its comparison periods; the size of
// selected is not capped here.
func FilterByPeriods(s domain.PeriodSeries, selected []string) domain.PeriodSeries {
	if len(selected) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(selected))
	for _, label := range selected {
		want[label] = struct{}{}
	}

	var filtered domain.PeriodSeries
	for _, p := range s {
		if _, ok := want[p.Label]; ok {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
