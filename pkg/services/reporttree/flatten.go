package reporttree

import (
	"strings"

	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/models/report"
)

// Flatten walks a report tree in pre-order and emits one FlatRow per
// renderable node. A Section contributes a synthetic header entry
// (label = section title, values = the section's own summary cells)
// followed by its children at the next nesting level, in source
// document order. Header rows carry no data and are dropped.
func Flatten(rows []report.Row, depth int) []domain.FlatRow {
	var flat []domain.FlatRow

	for _, row := range rows {
		switch row.Kind() {
		case report.KindHeader:
			continue
		case report.KindSection:
			// A section with no children still surfaces its own
			// summary cells, commonly the section total.
			flat = append(flat, domain.FlatRow{
				Label:    row.Label(),
				Values:   row.Values(),
				Level:    depth,
				IsHeader: true,
				IsTotal:  isTotalLabel(row.Label()),
			})
			flat = append(flat, Flatten(row.Rows, depth+1)...)
		default:
			flat = append(flat, domain.FlatRow{
				Label:   row.Label(),
				Values:  row.Values(),
				Level:   depth,
				IsTotal: row.Kind() == report.KindSummary || isTotalLabel(row.Label()),
			})
		}
	}

	return flat
}

func isTotalLabel(label string) bool {
	return strings.Contains(label, "Total") ||
		strings.Contains(label, "Profit") ||
		strings.Contains(label, "Loss")
}
