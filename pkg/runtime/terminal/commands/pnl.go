package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fin-tools/ledger-lens/pkg/runtime/terminal/export"
	csvexport "github.com/fin-tools/ledger-lens/pkg/services/export"
	"github.com/fin-tools/ledger-lens/pkg/services/pnl"
	"github.com/fin-tools/ledger-lens/pkg/store/reportfs"
	"github.com/fin-tools/ledger-lens/pkg/store/reports"

	"github.com/spf13/cobra"
)

type reportFlags struct {
	root     string
	business string
	filter   string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", "", "Path to the report file root")
	cmd.Flags().StringVar(&f.business, "business", "", "Business id to report on")

	_ = cmd.MarkFlagRequired("root")
	_ = cmd.MarkFlagRequired("business")
}

func (f *reportFlags) openStore() (*reportfs.Store, error) {
	store, err := reportfs.NewStore(reportfs.Settings{Root: f.root})
	if err != nil {
		return nil, fmt.Errorf("failed to open report root: %w", err)
	}
	return store, nil
}

// NewSummaryCmd prints the single-period summary view.
func NewSummaryCmd(reporter *export.Reporter) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the current financial year summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, err := flags.openStore()
			if err != nil {
				return err
			}
			resp, err := store.GetReport(ctx, flags.business, reports.VariantCurrentFinancialYear)
			if err != nil {
				return err
			}
			return reporter.HandleSummary(pnl.BuildSummary(resp))
		},
	}
	flags.register(cmd)
	return cmd
}

// NewMonthlyCmd prints the month-by-month breakdown table.
func NewMonthlyCmd(reporter *export.Reporter) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show the month-by-month breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, err := flags.openStore()
			if err != nil {
				return err
			}
			resp, err := store.GetReport(ctx, flags.business, reports.VariantMonthlyBreakdown)
			if err != nil {
				return err
			}
			view := pnl.FilterRows(pnl.BuildMonthly(resp), flags.filter)
			return reporter.HandleMonthly(view)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.filter, "filter", "", "Substring filter over labels and values")
	return cmd
}

// NewExportCmd writes the monthly breakdown as CSV.
func NewExportCmd(output io.Writer) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the month-by-month breakdown as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, err := flags.openStore()
			if err != nil {
				return err
			}
			resp, err := store.GetReport(ctx, flags.business, reports.VariantMonthlyBreakdown)
			if err != nil {
				return err
			}
			view := pnl.FilterRows(pnl.BuildMonthly(resp), flags.filter)
			_, err = fmt.Fprintln(output, csvexport.MonthlyCSV(view))
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.filter, "filter", "", "Substring filter over labels and values")
	return cmd
}
