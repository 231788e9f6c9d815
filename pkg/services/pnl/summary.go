package pnl

import (
	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/models/report"
	"github.com/fin-tools/ledger-lens/pkg/services/metrics"
	"github.com/fin-tools/ledger-lens/pkg/services/money"
	"github.com/fin-tools/ledger-lens/pkg/services/reporttree"
)

const topExpenseCount = 5

// BuildSummary assembles the single-period view: the flattened row
// list for the table plus the four headline scalars for the summary
// cards. Labels that cannot be found resolve to 0, so a sparse or
// empty report still renders.
func BuildSummary(resp *report.Response) domain.SummaryView {
	r := resp.First()
	if r == nil {
		return domain.SummaryView{}
	}

	view := domain.SummaryView{
		Rows:    reporttree.Flatten(r.Rows, 0),
		HasData: true,
	}

	view.TotalIncome = scalar(r.Rows, labelTotalIncome)
	view.GrossProfit = scalar(r.Rows, labelGrossProfit)
	view.TotalOperatingExpenses = scalar(r.Rows, labelTotalExpenses)
	view.NetProfit = scalar(r.Rows, labelNetProfit)
	view.IsProfit = view.NetProfit >= 0

	expenses := reporttree.FindSection(r.Rows, reporttree.TitleEquals(sectionExpenses))
	items := reporttree.ItemRowsOf(expenses)
	expenseItems := make([]domain.ExpenseItem, 0, len(items))
	for _, item := range items {
		var value float64
		if v := amounts(&item); len(v) > 0 {
			value = v[0]
		}
		expenseItems = append(expenseItems, domain.ExpenseItem{Name: item.Label(), Value: value})
	}
	view.TopExpenses = metrics.TopNWithOther(expenseItems, topExpenseCount)

	return view
}

func scalar(rows []report.Row, title string) float64 {
	raw, ok := reporttree.FindValueByTitle(rows, title)
	if !ok {
		return 0
	}
	return money.ParseAmount(raw)
}
