// Package directory exposes the client businesses a practice profile
// can see. It stands in, at interface level, for the external
// client-business directory API: business ids come from the report
// drop itself, provider metadata from the connection profile.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/fin-tools/ledger-lens/pkg/services/config"
	"github.com/fin-tools/ledger-lens/pkg/store/reports"
)

type Service interface {
	ListBusinesses(ctx context.Context) ([]domain.Business, error)
}

type service struct {
	profile config.Profile
	source  reports.Source
}

func NewService(profile config.Profile, source reports.Source) Service {
	return &service{profile: profile, source: source}
}

func (s *service) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	ids, err := s.source.ListBusinessIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses for profile %s: %w", s.profile.Name, err)
	}

	businesses := make([]domain.Business, 0, len(ids))
	for _, id := range ids {
		businesses = append(businesses, domain.Business{
			ID:       id,
			Name:     displayName(id),
			Provider: s.profile.Provider,
		})
	}
	return businesses, nil
}

// displayName turns a directory-safe id like "acme-trading" into
// "Acme Trading". The real directory API carries proper names; this is
// the best the report drop alone can offer.
func displayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
