// Package config loads the accounting-connection profile registry: an
// ini file with one section per practice profile describing which
// provider the reports come from and where the pre-built report files
// live.
package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile is one practice connection: a named link between a practice
// and an accounting provider's report drop.
type Profile struct {
	Name       string
	Provider   string
	ReportRoot string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile registry: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, Profile{
			Name:       section.Name(),
			Provider:   section.Key("provider").String(),
			ReportRoot: section.Key("report_root").String(),
		})
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	return &Profile{
		Name:       section.Name(),
		Provider:   section.Key("provider").String(),
		ReportRoot: section.Key("report_root").String(),
	}, nil
}
