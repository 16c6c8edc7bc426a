package analytics

import "github.com/epi-tools/covid-atlas/pkg/models/domain"

// DeriveDeltas computes day-over-day deltas for the three cumulative
// counters, clipped at zero: the counters are expected to be monotonic, so a
// decrease (a data correction upstream) counts as no new cases that day
// rather than a negative daily value. The point at index 0 has no prior day
// and its deltas stay undefined.
func DeriveDeltas(series domain.DailySeries) domain.DailySeries {
	points := append([]domain.DailyPoint(nil), series.Points...)
	for i := 1; i < len(points); i++ {
		points[i].NewConfirmed = clipDelta(points[i].Confirmed - points[i-1].Confirmed)
		points[i].NewDeceased = clipDelta(points[i].Deceased - points[i-1].Deceased)
		points[i].NewRecovered = clipDelta(points[i].Recovered - points[i-1].Recovered)
	}
	return domain.DailySeries{Points: points, HasDeltas: true}
}

func clipDelta(d int64) int64 {
	if d < 0 {
		return 0
	}
	return d
}
