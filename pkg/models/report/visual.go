package report

// VisualReport is the pre-normalized shape behind the
// visualFriendlyPnlDashboardDisplay variant: the upstream edge layer has
// already split the tree into gross/net profit sections and flat data
// rows aligned with Headings.
type VisualReport struct {
	Headings            []string        `json:"headings,omitempty"`
	GrossProfitSections []VisualSection `json:"grossProfitSections,omitempty"`
	NetProfitSections   []VisualSection `json:"netProfitSections,omitempty"`
	GrossProfitDataRow  []string        `json:"grossProfitDataRow,omitempty"`
	NetProfitDataRow    []string        `json:"netProfitDataRow,omitempty"`
}

// VisualSection is one titled block of the visual dashboard payload.
// Values align positionally with the parent report's Headings.
type VisualSection struct {
	Title  string      `json:"title"`
	Values []string    `json:"values,omitempty"`
	Rows   []VisualRow `json:"rows,omitempty"`
}

// VisualRow is a single line item inside a visual section.
type VisualRow struct {
	Name   string   `json:"name"`
	Values []string `json:"values,omitempty"`
}
