package domain

// FlatRow is one renderable line of a flattened report tree.
// Values keep the source's formatted display strings untouched;
// formatting decisions belong to the presentation layer.
type FlatRow struct {
	Label    string
	Values   []string
	Level    int
	IsHeader bool
	IsTotal  bool
}

// ExpenseItem is one itemized expense category with its aggregate value.
type ExpenseItem struct {
	Name  string
	Value float64
}

// ExpenseSeries is one expense category tracked across periods, used
// for trend charting.
type ExpenseSeries struct {
	Name   string
	Series PeriodSeries
}

// SummaryView backs the single-period table and summary cards.
type SummaryView struct {
	Rows                   []FlatRow
	TotalIncome            float64
	GrossProfit            float64
	TotalOperatingExpenses float64
	NetProfit              float64
	IsProfit               bool
	TopExpenses            []ExpenseItem
	HasData                bool
}

// MonthlyView backs the month-by-month breakdown table and its CSV
// export.
type MonthlyView struct {
	PeriodLabels []string
	Rows         []FlatRow
	HasData      bool
}

// TrendView backs the quarterly and annual dashboards: revenue,
// expense and net-profit series with vs-last-period growth figures and
// the leading expense categories as per-period series.
type TrendView struct {
	Granularity     string
	Revenue         PeriodSeries
	Expenses        PeriodSeries
	NetProfit       PeriodSeries
	RevenueGrowth   float64
	ExpenseGrowth   float64
	NetProfitGrowth float64
	ProfitMargin    float64
	TopExpenses     []ExpenseSeries
	HasData         bool
}

// FinancialYearView backs the visual dashboard built from the
// pre-normalized financial-year payload.
type FinancialYearView struct {
	Headings         []string
	Revenue          PeriodSeries
	ExpenseSections  []ExpenseSeries
	GrossProfitTrend PeriodSeries
	NetProfitTrend   PeriodSeries
	HasData          bool
}
