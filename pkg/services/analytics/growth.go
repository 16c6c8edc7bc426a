package analytics

import "github.com/epi-tools/covid-atlas/pkg/models/domain"

// ClassifyGrowth computes the period growth of the cumulative confirmed
// counter between the first and last point of the series. ok is false for an
// empty series; callers must guard before rendering.
//
// A first value of zero has no measurable rate: raw growth 0 and factor 1
// instead of a division by zero. Negative first values violate the
// non-negativity convention and are clamped to the same degenerate branch.
func ClassifyGrowth(series domain.DailySeries) (domain.GrowthRate, bool) {
	first, ok := series.First()
	if !ok {
		return domain.GrowthRate{}, false
	}
	last, _ := series.Last()

	growth := domain.GrowthRate{RawGrowth: 0, Factor: 1}
	if first.Confirmed > 0 {
		growth.RawGrowth = last.Confirmed - first.Confirmed
		growth.Factor = float64(last.Confirmed) / float64(first.Confirmed)
	}

	if growth.Factor <= 2 {
		growth.Kind = domain.GrowthPercentage
	} else {
		growth.Kind = domain.GrowthMultiplier
	}
	return growth, true
}
