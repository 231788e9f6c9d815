package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connections.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRegistry_LoadsProfiles(t *testing.T) {
	path := writeRegistry(t, `[acme-accounting]
provider = Xero
report_root = /var/reports/acme

[harbor-books]
provider = QuickBooks
report_root = /var/reports/harbor
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "acme-accounting", profiles[0].Name)
	assert.Equal(t, "Xero", profiles[0].Provider)
	assert.Equal(t, "/var/reports/acme", profiles[0].ReportRoot)
}

func TestGetProfile(t *testing.T) {
	path := writeRegistry(t, `[acme-accounting]
provider = Xero
report_root = /var/reports/acme
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profile, err := registry.GetProfile(context.Background(), "acme-accounting")
	require.NoError(t, err)
	assert.Equal(t, "Xero", profile.Provider)

	_, err = registry.GetProfile(context.Background(), "unknown")
	assert.Error(t, err)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}
