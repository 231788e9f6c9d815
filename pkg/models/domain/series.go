package domain

// PeriodPoint is one labeled value of a metric series.
type PeriodPoint struct {
	Label string
	Value float64
}

// PeriodSeries is an ordered label -> value mapping for one metric
// across reporting periods. Order matches the column order of the
// source report and governs chart ordering downstream.
type PeriodSeries []PeriodPoint

func (s PeriodSeries) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, p := range s {
		labels = append(labels, p.Label)
	}
	return labels
}

func (s PeriodSeries) Values() []float64 {
	values := make([]float64, 0, len(s))
	for _, p := range s {
		values = append(values, p.Value)
	}
	return values
}

// Get returns the value for a label, with ok reporting whether the
// label is present.
func (s PeriodSeries) Get(label string) (float64, bool) {
	for _, p := range s {
		if p.Label == label {
			return p.Value, true
		}
	}
	return 0, false
}

// LastTwo returns the two most recent adjacent values (previous,
// current). Series shorter than two periods report ok = false.
func (s PeriodSeries) LastTwo() (previous, current float64, ok bool) {
	if len(s) < 2 {
		return 0, 0, false
	}
	return s[len(s)-2].Value, s[len(s)-1].Value, true
}
