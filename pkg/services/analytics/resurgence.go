package analytics

import "github.com/epi-tools/covid-atlas/pkg/models/domain"

// DetectResurgence scans the daily new-confirmed values for a three-day
// plateau of exactly zero new cases immediately followed by a day with at
// least one new case: the outbreak looked over, then restarted.
//
// The delta at index 0 is undefined, so the earliest trailing window that
// can average to zero ends at index 3 and the shortest series that can
// trigger has five points. Series with fewer than four points report no
// resurgence by construction.
func DetectResurgence(series domain.DailySeries) bool {
	points := series.Points
	if len(points) < 4 {
		return false
	}
	for i := 3; i+1 < len(points); i++ {
		window := points[i-2].NewConfirmed + points[i-1].NewConfirmed + points[i].NewConfirmed
		if window == 0 && points[i+1].NewConfirmed > 0 {
			return true
		}
	}
	return false
}
