package reports

import (
	"context"

	"github.com/fin-tools/ledger-lens/pkg/models/report"
)

// Variant names one of the pre-built report documents the accounting
// integration publishes per business.
type Variant string

const (
	VariantCurrentFinancialYear Variant = "basicCurrentFinancialYear"
	VariantMonthlyBreakdown     Variant = "monthByMonthBreakdownLast12Months"
	VariantVisualDashboard      Variant = "visualFriendlyPnlDashboardDisplay"
)

// Source supplies parsed report documents for a business. A nil
// document with a nil error is the "no data available" state; errors
// are reserved for genuinely broken reads (unreadable file, malformed
// JSON).
type Source interface {
	GetReport(ctx context.Context, businessID string, variant Variant) (*report.Response, error)
	GetVisualReport(ctx context.Context, businessID string) (*report.VisualReport, error)
	ListBusinessIDs(ctx context.Context) ([]string, error)
}
