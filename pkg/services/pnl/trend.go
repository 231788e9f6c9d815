package pnl

import (
	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/models/report"
	"github.com/fin-tools/ledger-lens/pkg/services/metrics"
	"github.com/fin-tools/ledger-lens/pkg/services/reporttree"
	"github.com/fin-tools/ledger-lens/pkg/services/series"
)

// BuildQuarterly assembles the quarter-over-quarter dashboard from a
// quarterly breakdown report.
func BuildQuarterly(resp *report.Response) domain.TrendView {
	return buildTrend(resp, "quarterly")
}

// BuildAnnual assembles the year-over-year dashboard from an annual
// breakdown report.
func BuildAnnual(resp *report.Response) domain.TrendView {
	return buildTrend(resp, "annual")
}

// buildTrend extracts the revenue and expense summary series, the
// literal "Net Profit" row, growth between the two most recent
// periods, and the leading expense categories as per-period series.
func buildTrend(resp *report.Response, granularity string) domain.TrendView {
	view := domain.TrendView{Granularity: granularity}

	r := resp.First()
	if r == nil {
		return view
	}
	view.HasData = true

	labels := PeriodLabels(r)

	income := reporttree.FindSection(r.Rows, reporttree.TitleEquals(sectionIncome))
	expenses := reporttree.FindSection(r.Rows, reporttree.TitleEquals(sectionExpenses))

	view.Revenue = series.Zip(labels, amounts(reporttree.SummaryRowOf(income)))
	view.Expenses = series.Zip(labels, amounts(reporttree.SummaryRowOf(expenses)))
	view.NetProfit = series.Zip(labels, amounts(reporttree.FindRowByLabel(r.Rows, labelNetProfit)))

	view.RevenueGrowth = metrics.SeriesGrowth(view.Revenue)
	view.ExpenseGrowth = metrics.SeriesGrowth(view.Expenses)
	view.NetProfitGrowth = metrics.SeriesGrowth(view.NetProfit)

	if _, netNow, ok := view.NetProfit.LastTwo(); ok {
		if _, revNow, ok := view.Revenue.LastTwo(); ok {
			view.ProfitMargin = metrics.ProfitMargin(netNow, revNow)
		}
	} else if len(view.NetProfit) == 1 && len(view.Revenue) == 1 {
		view.ProfitMargin = metrics.ProfitMargin(view.NetProfit[0].Value, view.Revenue[0].Value)
	}

	view.TopExpenses = topExpenseSeries(expenses, labels)

	return view
}

// topExpenseSeries picks the leading expense categories, ranked by
// their total across all periods, and returns each as a full
// per-period series for trend charting. No "Other" bucket here: the
// charts plot only the named categories.
func topExpenseSeries(section *report.Row, labels []string) []domain.ExpenseSeries {
	items := reporttree.ItemRowsOf(section)
	if len(items) == 0 {
		return nil
	}

	totals := make([]domain.ExpenseItem, 0, len(items))
	byName := make(map[string]domain.PeriodSeries, len(items))
	for i := range items {
		values := amounts(&items[i])
		var total float64
		for _, v := range values {
			total += v
		}
		name := items[i].Label()
		totals = append(totals, domain.ExpenseItem{Name: name, Value: total})
		byName[name] = series.Zip(labels, values)
	}

	ranked := metrics.TopNWithOther(totals, topExpenseCount)
	var top []domain.ExpenseSeries
	for _, item := range ranked {
		if item.Name == metrics.OtherBucketName {
			continue
		}
		top = append(top, domain.ExpenseSeries{Name: item.Name, Series: byName[item.Name]})
	}
	return top
}
