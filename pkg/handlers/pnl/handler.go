package pnl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fin-tools/ledger-lens/pkg/adapters"
	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/models/report"
	"github.com/fin-tools/ledger-lens/pkg/services/export"
	pnlsvc "github.com/fin-tools/ledger-lens/pkg/services/pnl"
	"github.com/fin-tools/ledger-lens/pkg/services/series"
	"github.com/fin-tools/ledger-lens/pkg/store/reports"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler serves the profit-and-loss view models for one business.
type Handler struct {
	source reports.Source
	now    func() time.Time
}

func NewHandler(source reports.Source) *Handler {
	return &Handler{source: source, now: time.Now}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := chi.URLParam(r, "businessID")

	resp, err := h.source.GetReport(ctx, businessID, reports.VariantCurrentFinancialYear)
	if err != nil {
		h.fail(w, r, err, "failed to load summary report")
		return
	}

	h.encode(w, r, adapters.MapSummary(pnlsvc.BuildSummary(resp)))
}

func (h *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := chi.URLParam(r, "businessID")

	resp, err := h.source.GetReport(ctx, businessID, reports.VariantMonthlyBreakdown)
	if err != nil {
		h.fail(w, r, err, "failed to load monthly report")
		return
	}

	view := pnlsvc.FilterRows(pnlsvc.BuildMonthly(resp), r.URL.Query().Get("filter"))
	h.encode(w, r, adapters.MapMonthly(view))
}

func (h *Handler) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	businessID := chi.URLParam(r, "businessID")

	resp, err := h.source.GetReport(ctx, businessID, reports.VariantMonthlyBreakdown)
	if err != nil {
		h.fail(w, r, err, "failed to load monthly report")
		return
	}

	view := pnlsvc.FilterRows(pnlsvc.BuildMonthly(resp), r.URL.Query().Get("filter"))
	csv := export.MonthlyCSV(view)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(h.now())))
	if _, err := w.Write([]byte(csv)); err != nil {
		logger.Error().Err(err).Str("business", businessID).Msg("failed to write csv export")
	}
}

func (h *Handler) GetQuarterly(w http.ResponseWriter, r *http.Request) {
	h.getTrend(w, r, pnlsvc.BuildQuarterly)
}

func (h *Handler) GetAnnual(w http.ResponseWriter, r *http.Request) {
	h.getTrend(w, r, pnlsvc.BuildAnnual)
}

func (h *Handler) getTrend(
	w http.ResponseWriter,
	r *http.Request,
	build func(*report.Response) domain.TrendView,
) {
	ctx := r.Context()
	businessID := chi.URLParam(r, "businessID")

	resp, err := h.source.GetReport(ctx, businessID, reports.VariantMonthlyBreakdown)
	if err != nil {
		h.fail(w, r, err, "failed to load breakdown report")
		return
	}

	view := build(resp)
	if selected := selectedPeriods(r); selected != nil {
		view.Revenue = series.FilterByPeriods(view.Revenue, selected)
		view.Expenses = series.FilterByPeriods(view.Expenses, selected)
		view.NetProfit = series.FilterByPeriods(view.NetProfit, selected)
		for i := range view.TopExpenses {
			view.TopExpenses[i].Series = series.FilterByPeriods(view.TopExpenses[i].Series, selected)
		}
	}

	h.encode(w, r, adapters.MapTrend(view))
}

func (h *Handler) GetFinancialYear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	businessID := chi.URLParam(r, "businessID")

	visual, err := h.source.GetVisualReport(ctx, businessID)
	if err != nil {
		h.fail(w, r, err, "failed to load financial year report")
		return
	}

	view := pnlsvc.BuildFinancialYear(visual)
	if selected := selectedPeriods(r); selected != nil {
		view.Revenue = series.FilterByPeriods(view.Revenue, selected)
		view.GrossProfitTrend = series.FilterByPeriods(view.GrossProfitTrend, selected)
		view.NetProfitTrend = series.FilterByPeriods(view.NetProfitTrend, selected)
		for i := range view.ExpenseSections {
			view.ExpenseSections[i].Series = series.FilterByPeriods(view.ExpenseSections[i].Series, selected)
		}
	}

	h.encode(w, r, adapters.MapFinancialYear(view))
}

// selectedPeriods parses the comma-separated "periods" query param.
// The comparison-set cap lives in the frontend; the API passes any
// selection through.
func selectedPeriods(r *http.Request) []string {
	raw := r.URL.Query().Get("periods")
	if raw == "" {
		return nil
	}
	var selected []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			selected = append(selected, p)
		}
	}
	return selected
}

func (h *Handler) encode(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg(msg)
	http.Error(w, msg, http.StatusInternalServerError)
}
