// Package pnl assembles chart- and table-ready view models from raw
// profit-and-loss report documents. Every assembler is a pure
// function: it takes one immutable report snapshot and returns a fresh
// view model, clamping missing sections, blank cells and absent data
// to zero values instead of failing.
package pnl

import (
	"fmt"

	"github.com/fin-tools/ledger-lens/pkg/models/report"
	"github.com/fin-tools/ledger-lens/pkg/services/money"
)

const (
	sectionIncome   = "Income"
	sectionExpenses = "Less Operating Expenses"

	labelTotalIncome   = "Total Income"
	labelGrossProfit   = "Gross Profit"
	labelTotalExpenses = "Total Operating Expenses"
	labelNetProfit     = "Net Profit"
)

// PeriodLabels extracts column headers from a report's Fields metadata
// (ids "Period" and "Column", in order). Reports without field
// metadata fall back to positional labels P1..Pn sized to the widest
// data row.
func PeriodLabels(r *report.Report) []string {
	if r == nil {
		return nil
	}

	var labels []string
	for _, f := range r.Fields {
		if f.ID == "Period" || f.ID == "Column" {
			labels = append(labels, f.Value)
		}
	}
	if len(labels) > 0 {
		return labels
	}

	width := maxValueWidth(r.Rows)
	for i := 0; i < width; i++ {
		labels = append(labels, fmt.Sprintf("P%d", i+1))
	}
	return labels
}

func maxValueWidth(rows []report.Row) int {
	width := 0
	for _, row := range rows {
		if n := len(row.Values()); n > width {
			width = n
		}
		if nested := maxValueWidth(row.Rows); nested > width {
			width = nested
		}
	}
	return width
}

// amounts parses a row's display strings into numbers, blank and
// malformed cells coming back as 0.
func amounts(row *report.Row) []float64 {
	if row == nil {
		return nil
	}
	raw := row.Values()
	parsed := make([]float64, 0, len(raw))
	for _, v := range raw {
		parsed = append(parsed, money.ParseAmount(v))
	}
	return parsed
}
