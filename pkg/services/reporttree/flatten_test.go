package reporttree

import (
	"testing"

	"github.com/fin-tools/ledger-lens/pkg/models/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(kind report.RowKind, cells ...string) report.Row {
	row := report.Row{RowType: kind}
	for _, c := range cells {
		row.Cells = append(row.Cells, report.Cell{Value: c})
	}
	return row
}

func section(title string, children ...report.Row) report.Row {
	return report.Row{RowType: report.KindSection, Title: title, Rows: children}
}

func TestFlatten_PreOrder(t *testing.T) {
	rows := []report.Row{
		section("A",
			leaf(report.KindRow, "a1", "10"),
			leaf(report.KindRow, "a2", "20"),
		),
		section("B",
			leaf(report.KindRow, "b1", "30"),
		),
	}

	flat := Flatten(rows, 0)

	labels := make([]string, 0, len(flat))
	for _, f := range flat {
		labels = append(labels, f.Label)
	}
	assert.Equal(t, []string{"A", "a1", "a2", "B", "b1"}, labels)
}

func TestFlatten_NestedSectionsAndLevels(t *testing.T) {
	rows := []report.Row{
		section("Expenses",
			leaf(report.KindRow, "Rent", "500"),
			section("Payroll",
				leaf(report.KindRow, "Wages", "2,000"),
			),
			leaf(report.KindSummary, "Total Expenses", "2,500"),
		),
	}

	flat := Flatten(rows, 0)
	require.Len(t, flat, 5)

	assert.Equal(t, "Expenses", flat[0].Label)
	assert.True(t, flat[0].IsHeader)
	assert.Equal(t, 0, flat[0].Level)

	assert.Equal(t, "Rent", flat[1].Label)
	assert.Equal(t, 1, flat[1].Level)
	assert.False(t, flat[1].IsTotal)

	assert.Equal(t, "Payroll", flat[2].Label)
	assert.True(t, flat[2].IsHeader)
	assert.Equal(t, 1, flat[2].Level)

	assert.Equal(t, "Wages", flat[3].Label)
	assert.Equal(t, 2, flat[3].Level)

	assert.Equal(t, "Total Expenses", flat[4].Label)
	assert.True(t, flat[4].IsTotal)
}

func TestFlatten_EmptySectionStillEmitsHeader(t *testing.T) {
	rows := []report.Row{
		{
			RowType: report.KindSection,
			Title:   "Other Income",
			Cells: []report.Cell{
				{Value: "Other Income"},
				{Value: "150.00"},
			},
		},
	}

	flat := Flatten(rows, 0)
	require.Len(t, flat, 1)
	assert.Equal(t, "Other Income", flat[0].Label)
	assert.Equal(t, []string{"150.00"}, flat[0].Values)
	assert.True(t, flat[0].IsHeader)
}

func TestFlatten_HeaderRowsDropped(t *testing.T) {
	rows := []report.Row{
		leaf(report.KindHeader, "", "Jan", "Feb"),
		leaf(report.KindRow, "Sales", "10", "20"),
	}

	flat := Flatten(rows, 0)
	require.Len(t, flat, 1)
	assert.Equal(t, "Sales", flat[0].Label)
}

func TestFlatten_TotalMarking(t *testing.T) {
	rows := []report.Row{
		leaf(report.KindRow, "Net Profit", "600"),
		leaf(report.KindRow, "Operating Loss", "-50"),
		leaf(report.KindSummary, "Subtotal", "550"),
		leaf(report.KindRow, "Rent", "500"),
	}

	flat := Flatten(rows, 0)
	require.Len(t, flat, 4)
	assert.True(t, flat[0].IsTotal, "Profit label")
	assert.True(t, flat[1].IsTotal, "Loss label")
	assert.True(t, flat[2].IsTotal, "summary row type")
	assert.False(t, flat[3].IsTotal)
}
