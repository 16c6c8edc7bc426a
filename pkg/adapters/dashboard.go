package adapters

import (
	"github.com/epi-tools/covid-atlas/pkg/models/api"
	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

func MapRecordDomainToApi(rec domain.Record) api.Record {
	return api.Record{
		Date:      rec.Date,
		Continent: rec.Continent,
		Country:   rec.Country,
		Confirmed: rec.Confirmed,
		Active:    rec.Active,
		Recovered: rec.Recovered,
		Deceased:  rec.Deceased,
	}
}

// MapSeriesDomainToApi converts a daily series. Delta fields are only set
// from index 1 on; index 0 has no prior day and stays without them.
func MapSeriesDomainToApi(series domain.DailySeries) []api.DailyPoint {
	points := make([]api.DailyPoint, 0, len(series.Points))
	for i, p := range series.Points {
		point := api.DailyPoint{
			Date:      p.Date,
			Confirmed: p.Confirmed,
			Deceased:  p.Deceased,
			Recovered: p.Recovered,
		}
		if series.HasDeltas && i > 0 {
			nc, nd, nr := p.NewConfirmed, p.NewDeceased, p.NewRecovered
			point.NewConfirmed = &nc
			point.NewDeceased = &nd
			point.NewRecovered = &nr
		}
		points = append(points, point)
	}
	return points
}

func MapGrowthDomainToApi(g *domain.GrowthRate) *api.GrowthRate {
	if g == nil {
		return nil
	}
	return &api.GrowthRate{
		RawGrowth:   g.RawGrowth,
		Factor:      g.Factor,
		Kind:        string(g.Kind),
		DisplayText: g.Display(),
	}
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	summary := api.Summary{
		ConfirmedTotal: s.ConfirmedTotal,
		ActiveTotal:    s.ActiveTotal,
		RecoveredTotal: s.RecoveredTotal,
		DeceasedTotal:  s.DeceasedTotal,
		Days:           s.Days,
		AvgDailyNew:    s.AvgDailyNew,
		PeakDailyNew:   s.PeakDailyNew,
	}
	if s.HasPeak {
		peak := s.PeakDate
		summary.PeakDate = &peak
	}
	return summary
}

func MapDashboardDomainToApi(d domain.Dashboard) api.Dashboard {
	records := make([]api.Record, 0, len(d.Records))
	for _, rec := range d.Records {
		records = append(records, MapRecordDomainToApi(rec))
	}

	return api.Dashboard{
		Continent:   d.Filter.Continent,
		Country:     d.Filter.Country,
		Summary:     MapSummaryDomainToApi(d.Summary),
		Series:      MapSeriesDomainToApi(d.Series),
		Records:     records,
		Resurgence:  d.Resurgence,
		Growth:      MapGrowthDomainToApi(d.Growth),
		Conclusions: d.Conclusions,
	}
}
