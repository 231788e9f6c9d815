// Package reportfs reads pre-built report JSON documents from the
// filesystem, following the integration's path convention
// {root}/{resource}/{businessID}/{variant}.json.
package reportfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fin-tools/ledger-lens/pkg/models/report"
	"github.com/fin-tools/ledger-lens/pkg/store/reports"
)

const defaultResource = "financialReports"

type Store struct {
	root     string
	resource string
}

type Settings struct {
	Root string
	// Resource overrides the path segment between the root and the
	// business id. Empty means "financialReports".
	Resource string
}

func NewStore(settings Settings) (*Store, error) {
	if settings.Root == "" {
		return nil, errors.New("report root is required")
	}
	resource := settings.Resource
	if resource == "" {
		resource = defaultResource
	}
	return &Store{root: settings.Root, resource: resource}, nil
}

func (s *Store) GetReport(
	_ context.Context,
	businessID string,
	variant reports.Variant,
) (*report.Response, error) {
	var resp report.Response
	found, err := s.read(businessID, string(variant), &resp)
	if err != nil || !found {
		return nil, err
	}
	return &resp, nil
}

func (s *Store) GetVisualReport(_ context.Context, businessID string) (*report.VisualReport, error) {
	var visual report.VisualReport
	found, err := s.read(businessID, string(reports.VariantVisualDashboard), &visual)
	if err != nil || !found {
		return nil, err
	}
	return &visual, nil
}

func (s *Store) ListBusinessIDs(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, s.resource))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list report directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// read decodes one report file into out. A missing file is the empty
// state (false, nil), not an error.
func (s *Store) read(businessID, variant string, out any) (bool, error) {
	path := filepath.Join(s.root, s.resource, businessID, variant+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	return true, nil
}
