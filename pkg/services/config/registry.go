package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

// DatasetProfile names one configured dataset source: where it lives and how
// to read it.
type DatasetProfile struct {
	Name   string
	Format domain.ProfileType
	Path   string
}

// Registry reads named dataset profiles from an ini file. Each section is a
// profile with `format` (csv or duckdb) and `path` keys.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.ConfigProfile, error)
	GetProfile(ctx context.Context, name string) (*DatasetProfile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load profile registry %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]domain.ConfigProfile, error) {
	var profiles []domain.ConfigProfile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, domain.ConfigProfile{
			Name: section.Name(),
			Type: profileType(section.Key("format").String()),
		})
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (*DatasetProfile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	path := section.Key("path").String()
	if path == "" {
		return nil, fmt.Errorf("profile %s has no path", name)
	}

	return &DatasetProfile{
		Name:   name,
		Format: profileType(section.Key("format").String()),
		Path:   path,
	}, nil
}

func profileType(format string) domain.ProfileType {
	if format == string(domain.ProfileTypeDuckDB) {
		return domain.ProfileTypeDuckDB
	}
	return domain.ProfileTypeCSV
}
