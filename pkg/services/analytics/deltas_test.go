package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

// dailySeries builds a derived series from cumulative confirmed values, one
// per consecutive day starting 2020-03-01.
func dailySeries(confirmed ...int64) domain.DailySeries {
	points := make([]domain.DailyPoint, 0, len(confirmed))
	for i, c := range confirmed {
		points = append(points, domain.DailyPoint{
			Date:      day(2020, 3, 1).AddDate(0, 0, i),
			Confirmed: c,
		})
	}
	return DeriveDeltas(domain.DailySeries{Points: points})
}

func TestDeriveDeltas(t *testing.T) {
	t.Run("computes day-over-day deltas from index 1", func(t *testing.T) {
		series := DeriveDeltas(domain.DailySeries{Points: []domain.DailyPoint{
			{Date: day(2020, 3, 1), Confirmed: 10, Deceased: 1, Recovered: 0},
			{Date: day(2020, 3, 2), Confirmed: 15, Deceased: 1, Recovered: 3},
			{Date: day(2020, 3, 3), Confirmed: 25, Deceased: 4, Recovered: 5},
		}})

		require.True(t, series.HasDeltas)
		assert.Equal(t, int64(5), series.Points[1].NewConfirmed)
		assert.Equal(t, int64(0), series.Points[1].NewDeceased)
		assert.Equal(t, int64(3), series.Points[1].NewRecovered)
		assert.Equal(t, int64(10), series.Points[2].NewConfirmed)
		assert.Equal(t, int64(3), series.Points[2].NewDeceased)
		assert.Equal(t, int64(2), series.Points[2].NewRecovered)
	})

	t.Run("clips decreasing counters to zero", func(t *testing.T) {
		// A data correction drops the cumulative counter; that day counts
		// as no new cases, never a negative value.
		series := dailySeries(100, 80, 90)

		for i := 1; i < len(series.Points); i++ {
			assert.GreaterOrEqual(t, series.Points[i].NewConfirmed, int64(0))
		}
		assert.Equal(t, int64(0), series.Points[1].NewConfirmed)
		assert.Equal(t, int64(10), series.Points[2].NewConfirmed)
	})

	t.Run("does not mutate the input series", func(t *testing.T) {
		original := domain.DailySeries{Points: []domain.DailyPoint{
			{Date: day(2020, 3, 1), Confirmed: 10},
			{Date: day(2020, 3, 2), Confirmed: 20},
		}}

		_ = DeriveDeltas(original)

		assert.Equal(t, int64(0), original.Points[1].NewConfirmed)
		assert.False(t, original.HasDeltas)
	})

	t.Run("single point has nothing to diff", func(t *testing.T) {
		series := dailySeries(10)
		require.Len(t, series.Points, 1)
		assert.True(t, series.HasDeltas)
	})
}
