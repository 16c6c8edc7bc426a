package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

func TestClassifyGrowth(t *testing.T) {
	t.Run("doubling stays in the percentage framing", func(t *testing.T) {
		growth, ok := ClassifyGrowth(dailySeries(100, 150, 200))

		require.True(t, ok)
		assert.Equal(t, int64(100), growth.RawGrowth)
		assert.Equal(t, 2.0, growth.Factor)
		assert.Equal(t, domain.GrowthPercentage, growth.Kind)
		assert.Equal(t, "100.00%", growth.Display())
	})

	t.Run("beyond doubling switches to the multiplier framing", func(t *testing.T) {
		growth, ok := ClassifyGrowth(dailySeries(100, 200, 300))

		require.True(t, ok)
		assert.Equal(t, int64(200), growth.RawGrowth)
		assert.Equal(t, 3.0, growth.Factor)
		assert.Equal(t, domain.GrowthMultiplier, growth.Kind)
		assert.Equal(t, "3.00 veces (crecimiento multiplicativo)", growth.Display())
	})

	t.Run("zero baseline has no measurable rate", func(t *testing.T) {
		growth, ok := ClassifyGrowth(dailySeries(0, 500, 1000))

		require.True(t, ok)
		assert.Equal(t, int64(0), growth.RawGrowth)
		assert.Equal(t, 1.0, growth.Factor)
		assert.Equal(t, "0.00%", growth.Display())
	})

	t.Run("negative baseline clamps to the degenerate branch", func(t *testing.T) {
		growth, ok := ClassifyGrowth(dailySeries(-10, 50))

		require.True(t, ok)
		assert.Equal(t, int64(0), growth.RawGrowth)
		assert.Equal(t, 1.0, growth.Factor)
	})

	t.Run("empty series is undefined", func(t *testing.T) {
		_, ok := ClassifyGrowth(dailySeries())
		assert.False(t, ok)
	})

	t.Run("shrinking period reports negative raw growth", func(t *testing.T) {
		growth, ok := ClassifyGrowth(dailySeries(200, 150, 100))

		require.True(t, ok)
		assert.Equal(t, int64(-100), growth.RawGrowth)
		assert.Equal(t, 0.5, growth.Factor)
		assert.Equal(t, domain.GrowthPercentage, growth.Kind)
		assert.Equal(t, "-50.00%", growth.Display())
	})
}
