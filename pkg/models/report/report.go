package report

// RowKind tags the role a row plays inside a report tree.
type RowKind string

const (
	KindHeader  RowKind = "Header"
	KindSection RowKind = "Section"
	KindSummary RowKind = "SummaryRow"
	KindRow     RowKind = "Row"
)

type Attribute struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Cell holds one formatted display value. The first cell of a row is
// conventionally the row label; the rest are one-per-period amounts.
type Cell struct {
	Value      string      `json:"value"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Row is the recursive report tree node. Only Section rows carry nested
// Rows; SummaryRow and Row nodes are always leaves.
type Row struct {
	RowType RowKind `json:"rowType"`
	Title   string  `json:"title,omitempty"`
	Cells   []Cell  `json:"cells,omitempty"`
	Rows    []Row   `json:"rows,omitempty"`
}

// Field carries report-level metadata, e.g. period column headers keyed
// by id "Period" or "Column".
type Field struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type Report struct {
	ReportID   string  `json:"reportId"`
	ReportName string  `json:"reportName"`
	ReportType string  `json:"reportType"`
	Fields     []Field `json:"fields,omitempty"`
	Rows       []Row   `json:"rows,omitempty"`
}

// Response is the top-level document returned by the accounting
// integration for one reporting request. An empty Reports slice means
// "no data available", not a failure.
type Response struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	ProviderName string   `json:"providerName"`
	Reports      []Report `json:"reports,omitempty"`
}

// Kind normalizes the row type tag. Unknown tags map to KindHeader so
// that consumers filter them out instead of misreading their cells.
func (r Row) Kind() RowKind {
	switch r.RowType {
	case KindSection, KindSummary, KindRow:
		return r.RowType
	default:
		return KindHeader
	}
}

// Label returns the row's display label: the section title when set,
// otherwise the first cell's value.
func (r Row) Label() string {
	if r.Title != "" {
		return r.Title
	}
	if len(r.Cells) > 0 {
		return r.Cells[0].Value
	}
	return ""
}

// Values returns the per-period display strings, i.e. every cell after
// the label cell, verbatim.
func (r Row) Values() []string {
	if len(r.Cells) < 2 {
		return nil
	}
	values := make([]string, 0, len(r.Cells)-1)
	for _, c := range r.Cells[1:] {
		values = append(values, c.Value)
	}
	return values
}

// First returns the first report of a response, or nil when the
// response carries no data. Callers treat nil as the empty state.
func (r *Response) First() *Report {
	if r == nil || len(r.Reports) == 0 {
		return nil
	}
	return &r.Reports[0]
}
