package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/services/money"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 40,
		ValueWidth: 14,
	}
}

// Reporter renders view models as plain text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// HandleSummary prints the single-period summary cards followed by the
// flattened row table.
func (r *Reporter) HandleSummary(view domain.SummaryView) error {
	if !view.HasData {
		_, err := fmt.Fprintln(r.writer, "No report data available.")
		return err
	}

	funcMap := template.FuncMap{
		"amount": func(v float64) string { return money.FormatAmount(v) },
		"row": func(row domain.FlatRow) string {
			label := strings.Repeat("  ", row.Level) + row.Label
			value := ""
			if len(row.Values) > 0 {
				value = row.Values[0]
			}
			return fmt.Sprintf("| %-*s | %*s |", r.config.LabelWidth, label, r.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", r.config.LabelWidth+2),
				strings.Repeat("-", r.config.ValueWidth+2))
		},
	}

	tmpl := `Profit and Loss

Total Income:             {{amount .TotalIncome}}
Gross Profit:             {{amount .GrossProfit}}
Total Operating Expenses: {{amount .TotalOperatingExpenses}}
Net Profit:               {{amount .NetProfit}}{{if .IsProfit}} (profit){{else}} (loss){{end}}

{{separator}}
{{range .Rows}}{{row .}}
{{end}}{{separator}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, view)
}

// HandleMonthly prints the month-by-month breakdown table.
func (r *Reporter) HandleMonthly(view domain.MonthlyView) error {
	if !view.HasData {
		_, err := fmt.Fprintln(r.writer, "No report data available.")
		return err
	}

	header := append([]string{fmt.Sprintf("%-*s", r.config.LabelWidth, "Item")}, view.PeriodLabels...)
	if _, err := fmt.Fprintln(r.writer, strings.Join(header, " | ")); err != nil {
		return err
	}

	for _, row := range view.Rows {
		label := strings.Repeat("  ", row.Level) + row.Label
		line := append([]string{fmt.Sprintf("%-*s", r.config.LabelWidth, label)}, row.Values...)
		if _, err := fmt.Fprintln(r.writer, strings.Join(line, " | ")); err != nil {
			return err
		}
	}
	return nil
}
