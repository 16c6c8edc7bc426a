package analytics

import (
	"sort"
	"time"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

// Aggregate groups records by calendar date and sums the three cumulative
// counters within each group, producing one point per distinct date sorted
// ascending. Input order does not matter. Rows with a zero date cannot
// participate in a date-indexed series and are dropped silently.
func Aggregate(records []domain.Record) domain.DailySeries {
	grouped := make(map[time.Time]*domain.DailyPoint)
	for _, rec := range records {
		if rec.Date.IsZero() {
			continue
		}
		day := atMidnight(rec.Date)
		point, ok := grouped[day]
		if !ok {
			point = &domain.DailyPoint{Date: day}
			grouped[day] = point
		}
		point.Confirmed += rec.Confirmed
		point.Deceased += rec.Deceased
		point.Recovered += rec.Recovered
	}

	points := make([]domain.DailyPoint, 0, len(grouped))
	for _, point := range grouped {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return domain.DailySeries{Points: points}
}
