package reportfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fin-tools/ledger-lens/pkg/store/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReport(t *testing.T, root, businessID, variant, content string) {
	t.Helper()
	dir := filepath.Join(root, "financialReports", businessID)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, variant+".json"), []byte(content), 0o644))
}

func TestGetReport(t *testing.T) {
	root := t.TempDir()
	writeReport(t, root, "biz-1", string(reports.VariantCurrentFinancialYear), `{
		"id": "resp-1",
		"status": "OK",
		"providerName": "Xero",
		"reports": [{
			"reportId": "pnl",
			"reportName": "Profit and Loss",
			"reportType": "ProfitAndLoss",
			"rows": [{
				"rowType": "Section",
				"title": "Income",
				"rows": [{
					"rowType": "SummaryRow",
					"cells": [{"value": "Total Income"}, {"value": "1,000"}]
				}]
			}]
		}]
	}`)

	store, err := NewStore(Settings{Root: root})
	require.NoError(t, err)

	resp, err := store.GetReport(context.Background(), "biz-1", reports.VariantCurrentFinancialYear)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Xero", resp.ProviderName)
	require.Len(t, resp.Reports, 1)
	assert.Equal(t, "Income", resp.Reports[0].Rows[0].Title)
	assert.Equal(t, "Total Income", resp.Reports[0].Rows[0].Rows[0].Label())
}

func TestGetReport_MissingFileIsEmptyState(t *testing.T) {
	store, err := NewStore(Settings{Root: t.TempDir()})
	require.NoError(t, err)

	resp, err := store.GetReport(context.Background(), "ghost", reports.VariantMonthlyBreakdown)
	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetReport_MalformedJSON(t *testing.T) {
	root := t.TempDir()
	writeReport(t, root, "biz-1", string(reports.VariantMonthlyBreakdown), `{"reports": [`)

	store, err := NewStore(Settings{Root: root})
	require.NoError(t, err)

	_, err = store.GetReport(context.Background(), "biz-1", reports.VariantMonthlyBreakdown)
	assert.Error(t, err)
}

func TestGetVisualReport(t *testing.T) {
	root := t.TempDir()
	writeReport(t, root, "biz-1", string(reports.VariantVisualDashboard), `{
		"headings": ["Jul", "Aug"],
		"grossProfitSections": [{"title": "Trading Income", "values": ["100", "200"]}],
		"grossProfitDataRow": ["60", "70"],
		"netProfitDataRow": ["30", "40"]
	}`)

	store, err := NewStore(Settings{Root: root})
	require.NoError(t, err)

	visual, err := store.GetVisualReport(context.Background(), "biz-1")
	require.NoError(t, err)
	require.NotNil(t, visual)
	assert.Equal(t, []string{"Jul", "Aug"}, visual.Headings)
	assert.Equal(t, "Trading Income", visual.GrossProfitSections[0].Title)
}

func TestListBusinessIDs(t *testing.T) {
	root := t.TempDir()
	writeReport(t, root, "zeta", string(reports.VariantMonthlyBreakdown), `{}`)
	writeReport(t, root, "acme", string(reports.VariantMonthlyBreakdown), `{}`)

	store, err := NewStore(Settings{Root: root})
	require.NoError(t, err)

	ids, err := store.ListBusinessIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "zeta"}, ids)
}

func TestListBusinessIDs_NoDirectory(t *testing.T) {
	store, err := NewStore(Settings{Root: filepath.Join(t.TempDir(), "empty")})
	require.NoError(t, err)

	ids, err := store.ListBusinessIDs(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestNewStore_RequiresRoot(t *testing.T) {
	_, err := NewStore(Settings{})
	assert.Error(t, err)
}
