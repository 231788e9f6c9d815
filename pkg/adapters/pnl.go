// Package adapters maps domain view models onto the API response
// shapes.
package adapters

import (
	"github.com/fin-tools/ledger-lens/pkg/models/api"
	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/services/money"
)

func MapSeries(s domain.PeriodSeries) []api.SeriesPoint {
	points := make([]api.SeriesPoint, 0, len(s))
	for _, p := range s {
		points = append(points, api.SeriesPoint{Label: p.Label, Value: p.Value})
	}
	return points
}

func MapFlatRows(rows []domain.FlatRow) []api.FlatRow {
	out := make([]api.FlatRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.FlatRow{
			Label:    r.Label,
			Values:   r.Values,
			Level:    r.Level,
			IsHeader: r.IsHeader,
			IsTotal:  r.IsTotal,
		})
	}
	return out
}

func MapExpenseItems(items []domain.ExpenseItem) []api.ExpenseItem {
	out := make([]api.ExpenseItem, 0, len(items))
	for _, item := range items {
		out = append(out, api.ExpenseItem{
			Name:      item.Name,
			Value:     item.Value,
			Formatted: money.FormatAmount(item.Value),
		})
	}
	return out
}

func MapExpenseSeries(items []domain.ExpenseSeries) []api.ExpenseSeries {
	out := make([]api.ExpenseSeries, 0, len(items))
	for _, item := range items {
		out = append(out, api.ExpenseSeries{Name: item.Name, Series: MapSeries(item.Series)})
	}
	return out
}

func MapSummary(view domain.SummaryView) api.SummaryResponse {
	return api.SummaryResponse{
		HasData:                view.HasData,
		Rows:                   MapFlatRows(view.Rows),
		TotalIncome:            money.FormatAmount(view.TotalIncome),
		GrossProfit:            money.FormatAmount(view.GrossProfit),
		TotalOperatingExpenses: money.FormatAmount(view.TotalOperatingExpenses),
		NetProfit:              money.FormatAmount(view.NetProfit),
		IsProfit:               view.IsProfit,
		TopExpenses:            MapExpenseItems(view.TopExpenses),
	}
}

func MapMonthly(view domain.MonthlyView) api.MonthlyResponse {
	return api.MonthlyResponse{
		HasData:      view.HasData,
		PeriodLabels: view.PeriodLabels,
		Rows:         MapFlatRows(view.Rows),
	}
}

func MapTrend(view domain.TrendView) api.TrendResponse {
	return api.TrendResponse{
		HasData:         view.HasData,
		Granularity:     view.Granularity,
		Revenue:         MapSeries(view.Revenue),
		Expenses:        MapSeries(view.Expenses),
		NetProfit:       MapSeries(view.NetProfit),
		RevenueGrowth:   view.RevenueGrowth,
		ExpenseGrowth:   view.ExpenseGrowth,
		NetProfitGrowth: view.NetProfitGrowth,
		ProfitMargin:    view.ProfitMargin,
		TopExpenses:     MapExpenseSeries(view.TopExpenses),
	}
}

func MapFinancialYear(view domain.FinancialYearView) api.FinancialYearResponse {
	return api.FinancialYearResponse{
		HasData:          view.HasData,
		Headings:         view.Headings,
		Revenue:          MapSeries(view.Revenue),
		ExpenseSections:  MapExpenseSeries(view.ExpenseSections),
		GrossProfitTrend: MapSeries(view.GrossProfitTrend),
		NetProfitTrend:   MapSeries(view.NetProfitTrend),
	}
}

func MapBusiness(b domain.Business) api.Business {
	return api.Business{ID: b.ID, Name: b.Name, Provider: b.Provider}
}
