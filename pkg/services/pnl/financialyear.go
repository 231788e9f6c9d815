package pnl

import (
	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/models/report"
	"github.com/fin-tools/ledger-lens/pkg/services/money"
	"github.com/fin-tools/ledger-lens/pkg/services/reporttree"
	"github.com/fin-tools/ledger-lens/pkg/services/series"
)

// BuildFinancialYear assembles the financial-year dashboard from the
// pre-normalized visual payload: the upstream edge layer has already
// split the tree into gross/net profit sections and heading-aligned
// data rows, so this assembler only locates the relevant sections and
// zips rows against the headings.
func BuildFinancialYear(v *report.VisualReport) domain.FinancialYearView {
	if v == nil || len(v.Headings) == 0 {
		return domain.FinancialYearView{}
	}

	view := domain.FinancialYearView{
		Headings: v.Headings,
		HasData:  true,
	}

	if revenue := findVisualSection(v.GrossProfitSections, "income", "revenue"); revenue != nil {
		view.Revenue = series.Zip(v.Headings, parseAll(revenue.Values))
	}

	for i := range v.NetProfitSections {
		s := &v.NetProfitSections[i]
		if !matchesAny(s.Title, "expense", "operating") {
			continue
		}
		view.ExpenseSections = append(view.ExpenseSections, domain.ExpenseSeries{
			Name:   s.Title,
			Series: series.Zip(v.Headings, parseAll(s.Values)),
		})
	}

	view.GrossProfitTrend = series.Zip(v.Headings, parseAll(v.GrossProfitDataRow))
	view.NetProfitTrend = series.Zip(v.Headings, parseAll(v.NetProfitDataRow))

	return view
}

func findVisualSection(sections []report.VisualSection, substrings ...string) *report.VisualSection {
	for i := range sections {
		if matchesAny(sections[i].Title, substrings...) {
			return &sections[i]
		}
	}
	return nil
}

func matchesAny(title string, substrings ...string) bool {
	for _, sub := range substrings {
		if reporttree.TitleContainsFold(sub)(title) {
			return true
		}
	}
	return false
}

func parseAll(raw []string) []float64 {
	parsed := make([]float64, 0, len(raw))
	for _, v := range raw {
		parsed = append(parsed, money.ParseAmount(v))
	}
	return parsed
}
