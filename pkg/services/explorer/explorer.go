package explorer

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
	"github.com/epi-tools/covid-atlas/pkg/services/analytics"
	"github.com/epi-tools/covid-atlas/pkg/store/dataset"
)

// Explorer exposes the selection catalog and runs the full analytics
// pipeline for one filter selection. Every call recomputes from the cached
// dataset; calls are stateless and safe to run concurrently.
type Explorer interface {
	ListContinents(ctx context.Context) ([]string, error)
	ListCountries(ctx context.Context, continent string) ([]string, error)
	// DateBounds returns the min/max date available for the country, used as
	// the default range. nil when the selection has no rows.
	DateBounds(ctx context.Context, continent, country string) (*domain.DateRange, error)
	BuildDashboard(ctx context.Context, spec domain.FilterSpec) (*domain.Dashboard, error)
}

type datasetExplorer struct {
	store dataset.Store
}

func NewExplorer(store dataset.Store) Explorer {
	return &datasetExplorer{store: store}
}

func (e *datasetExplorer) ListContinents(ctx context.Context) ([]string, error) {
	records, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var continents []string
	for _, rec := range records {
		if rec.Continent == "" {
			continue
		}
		if _, ok := seen[rec.Continent]; ok {
			continue
		}
		seen[rec.Continent] = struct{}{}
		continents = append(continents, rec.Continent)
	}
	sort.Strings(continents)
	return continents, nil
}

func (e *datasetExplorer) ListCountries(ctx context.Context, continent string) ([]string, error) {
	records, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var countries []string
	for _, rec := range records {
		if rec.Continent != continent || rec.Country == "" {
			continue
		}
		if _, ok := seen[rec.Country]; ok {
			continue
		}
		seen[rec.Country] = struct{}{}
		countries = append(countries, rec.Country)
	}
	sort.Strings(countries)
	return countries, nil
}

func (e *datasetExplorer) DateBounds(ctx context.Context, continent, country string) (*domain.DateRange, error) {
	records, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var bounds *domain.DateRange
	for _, rec := range records {
		if rec.Continent != continent || rec.Country != country || rec.Date.IsZero() {
			continue
		}
		if bounds == nil {
			bounds = &domain.DateRange{Start: rec.Date, End: rec.Date}
			continue
		}
		if rec.Date.Before(bounds.Start) {
			bounds.Start = rec.Date
		}
		if rec.Date.After(bounds.End) {
			bounds.End = rec.Date
		}
	}
	return bounds, nil
}

func (e *datasetExplorer) BuildDashboard(ctx context.Context, spec domain.FilterSpec) (*domain.Dashboard, error) {
	logger := zerolog.Ctx(ctx)

	records, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := analytics.Filter(records, spec)
	daily := analytics.DeriveDeltas(analytics.Aggregate(filtered))

	resurgence := analytics.DetectResurgence(daily)
	summary := analytics.Summarize(filtered, daily)

	var growth *domain.GrowthRate
	if g, ok := analytics.ClassifyGrowth(daily); ok {
		growth = &g
	}

	logger.Debug().
		Str("continent", spec.Continent).
		Str("country", spec.Country).
		Int("rows", len(filtered)).
		Int("days", len(daily.Points)).
		Bool("resurgence", resurgence).
		Msg("dashboard computed")

	return &domain.Dashboard{
		Filter:      spec,
		Records:     filtered,
		Series:      daily,
		Summary:     summary,
		Resurgence:  resurgence,
		Growth:      growth,
		Conclusions: analytics.Conclusions(summary, growth, resurgence),
	}, nil
}
