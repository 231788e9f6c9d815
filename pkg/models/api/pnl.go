package api

type Business struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ExpenseItem struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

type ExpenseSeries struct {
	Name   string        `json:"name"`
	Series []SeriesPoint `json:"series"`
}

type FlatRow struct {
	Label    string   `json:"label"`
	Values   []string `json:"values,omitempty"`
	Level    int      `json:"level"`
	IsHeader bool     `json:"isHeader,omitempty"`
	IsTotal  bool     `json:"isTotal,omitempty"`
}

// SummaryResponse backs the single-period table and its four summary
// cards; card values arrive pre-formatted so the frontend renders them
// verbatim.
type SummaryResponse struct {
	HasData                bool          `json:"hasData"`
	Rows                   []FlatRow     `json:"rows,omitempty"`
	TotalIncome            string        `json:"totalIncome"`
	GrossProfit            string        `json:"grossProfit"`
	TotalOperatingExpenses string        `json:"totalOperatingExpenses"`
	NetProfit              string        `json:"netProfit"`
	IsProfit               bool          `json:"isProfit"`
	TopExpenses            []ExpenseItem `json:"topExpenses,omitempty"`
}

type MonthlyResponse struct {
	HasData      bool      `json:"hasData"`
	PeriodLabels []string  `json:"periodLabels,omitempty"`
	Rows         []FlatRow `json:"rows,omitempty"`
}

type TrendResponse struct {
	HasData         bool            `json:"hasData"`
	Granularity     string          `json:"granularity"`
	Revenue         []SeriesPoint   `json:"revenue,omitempty"`
	Expenses        []SeriesPoint   `json:"expenses,omitempty"`
	NetProfit       []SeriesPoint   `json:"netProfit,omitempty"`
	RevenueGrowth   float64         `json:"revenueGrowth"`
	ExpenseGrowth   float64         `json:"expenseGrowth"`
	NetProfitGrowth float64         `json:"netProfitGrowth"`
	ProfitMargin    float64         `json:"profitMargin"`
	TopExpenses     []ExpenseSeries `json:"topExpenses,omitempty"`
}

type FinancialYearResponse struct {
	HasData          bool            `json:"hasData"`
	Headings         []string        `json:"headings,omitempty"`
	Revenue          []SeriesPoint   `json:"revenue,omitempty"`
	ExpenseSections  []ExpenseSeries `json:"expenseSections,omitempty"`
	GrossProfitTrend []SeriesPoint   `json:"grossProfitTrend,omitempty"`
	NetProfitTrend   []SeriesPoint   `json:"netProfitTrend,omitempty"`
}
