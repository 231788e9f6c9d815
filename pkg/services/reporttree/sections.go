package reporttree

import (
	"strings"

	"github.com/fin-tools/ledger-lens/pkg/models/report"
)

// TitlePredicate selects a section by its title.
type TitlePredicate func(title string) bool

// TitleEquals matches a section title exactly.
func TitleEquals(want string) TitlePredicate {
	return func(title string) bool { return title == want }
}

// TitleContainsFold matches a section whose title contains the given
// substring, case-insensitively.
func TitleContainsFold(want string) TitlePredicate {
	lowered := strings.ToLower(want)
	return func(title string) bool {
		return strings.Contains(strings.ToLower(title), lowered)
	}
}

// FindSection scans the top-level rows for the first Section whose
// title satisfies the predicate. The scan is deliberately shallow:
// upstream reports keep the named sections (Income, Less Operating
// Expenses, ...) at the top level. Absence is the empty state, so the
// return is nil rather than an error.
func FindSection(rows []report.Row, pred TitlePredicate) *report.Row {
	for i := range rows {
		if rows[i].Kind() == report.KindSection && pred(rows[i].Title) {
			return &rows[i]
		}
	}
	return nil
}

// SummaryRowOf returns the first SummaryRow among a section's direct
// children, or nil.
func SummaryRowOf(section *report.Row) *report.Row {
	if section == nil {
		return nil
	}
	for i := range section.Rows {
		if section.Rows[i].Kind() == report.KindSummary {
			return &section.Rows[i]
		}
	}
	return nil
}

// ItemRowsOf returns a section's direct leaf rows, skipping any row
// whose label is a total line ("Total Operating Expenses" and the
// like) so that itemized aggregation never double counts.
func ItemRowsOf(section *report.Row) []report.Row {
	if section == nil {
		return nil
	}
	var items []report.Row
	for _, row := range section.Rows {
		if row.Kind() != report.KindRow {
			continue
		}
		if strings.HasPrefix(row.Label(), "Total ") {
			continue
		}
		items = append(items, row)
	}
	return items
}

// FindValueByTitle pulls a named scalar (Total Income, Gross Profit,
// Net Profit, ...) out of a report's rows. It looks first at the
// summary row of each top-level section, then at the top-level rows
// themselves. The search is intentionally two levels deep; upstream
// reports have a fixed shape and deeper nesting of these labels does
// not occur.
func FindValueByTitle(rows []report.Row, title string) (string, bool) {
	for i := range rows {
		if rows[i].Kind() != report.KindSection {
			continue
		}
		if summary := SummaryRowOf(&rows[i]); summary != nil && summary.Label() == title {
			if values := summary.Values(); len(values) > 0 {
				return values[0], true
			}
		}
	}

	for _, row := range rows {
		if row.Kind() == report.KindSection {
			continue
		}
		if row.Label() == title {
			if values := row.Values(); len(values) > 0 {
				return values[0], true
			}
		}
	}

	return "", false
}

// FindRowByLabel locates a leaf row with the exact label, checking the
// direct children of every top-level section and then the top level
// itself. Used for rows like "Net Profit" that upstream places
// inconsistently.
func FindRowByLabel(rows []report.Row, label string) *report.Row {
	for i := range rows {
		if rows[i].Kind() != report.KindSection {
			continue
		}
		for j := range rows[i].Rows {
			child := &rows[i].Rows[j]
			if child.Kind() != report.KindHeader && child.Label() == label {
				return child
			}
		}
	}
	for i := range rows {
		if rows[i].Kind() == report.KindSection || rows[i].Kind() == report.KindHeader {
			continue
		}
		if rows[i].Label() == label {
			return &rows[i]
		}
	}
	return nil
}
