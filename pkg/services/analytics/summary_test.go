package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

func TestSummarize(t *testing.T) {
	t.Run("totals sum over the filtered rows", func(t *testing.T) {
		filtered := []domain.Record{
			{Date: day(2020, 3, 1), Confirmed: 10, Active: 4, Recovered: 3, Deceased: 1},
			{Date: day(2020, 3, 2), Confirmed: 20, Active: 6, Recovered: 8, Deceased: 2},
		}

		summary := Summarize(filtered, dailySeries(10, 20))

		assert.Equal(t, int64(30), summary.ConfirmedTotal)
		assert.Equal(t, int64(10), summary.ActiveTotal)
		assert.Equal(t, int64(11), summary.RecoveredTotal)
		assert.Equal(t, int64(3), summary.DeceasedTotal)
		assert.Equal(t, 2, summary.Days)
	})

	t.Run("mean and peak skip the undefined first delta", func(t *testing.T) {
		// Deltas: _, 0, 0, 0, 5 → mean 1.25, peak 5 on the last day.
		summary := Summarize(nil, dailySeries(10, 10, 10, 10, 15))

		assert.Equal(t, 1.25, summary.AvgDailyNew)
		require.True(t, summary.HasPeak)
		assert.Equal(t, int64(5), summary.PeakDailyNew)
		assert.Equal(t, day(2020, 3, 5), summary.PeakDate)
	})

	t.Run("first peak wins on ties", func(t *testing.T) {
		// Deltas: _, 10, 10
		summary := Summarize(nil, dailySeries(10, 20, 30))

		require.True(t, summary.HasPeak)
		assert.Equal(t, day(2020, 3, 2), summary.PeakDate)
	})

	t.Run("empty input stays at zero", func(t *testing.T) {
		summary := Summarize(nil, dailySeries())

		assert.Zero(t, summary.ConfirmedTotal)
		assert.Zero(t, summary.AvgDailyNew)
		assert.False(t, summary.HasPeak)
	})

	t.Run("single day has no defined deltas", func(t *testing.T) {
		summary := Summarize(nil, dailySeries(10))

		assert.Equal(t, 1, summary.Days)
		assert.Zero(t, summary.AvgDailyNew)
		assert.False(t, summary.HasPeak)
	})
}
