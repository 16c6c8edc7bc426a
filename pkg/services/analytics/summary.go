package analytics

import "github.com/epi-tools/covid-atlas/pkg/models/domain"

// Summarize computes the period indicators: totals over the filtered rows
// and mean/peak of the daily new-confirmed values. Deltas are defined from
// index 1 on, so both mean and peak run over points[1:]; the first peak date
// wins on ties. Empty input yields all-zero totals.
func Summarize(filtered []domain.Record, daily domain.DailySeries) domain.Summary {
	summary := domain.Summary{Days: len(daily.Points)}

	for _, rec := range filtered {
		summary.ConfirmedTotal += rec.Confirmed
		summary.ActiveTotal += rec.Active
		summary.RecoveredTotal += rec.Recovered
		summary.DeceasedTotal += rec.Deceased
	}

	var sum int64
	var count int
	for i := 1; i < len(daily.Points); i++ {
		v := daily.Points[i].NewConfirmed
		sum += v
		count++
		if !summary.HasPeak || v > summary.PeakDailyNew {
			summary.PeakDailyNew = v
			summary.PeakDate = daily.Points[i].Date
			summary.HasPeak = true
		}
	}
	if count > 0 {
		summary.AvgDailyNew = float64(sum) / float64(count)
	}

	return summary
}
