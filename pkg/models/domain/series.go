package domain

import "time"

// DailyPoint is one date of the aggregated time series. The cumulative
// counters are sums over all source rows sharing the date. The New* fields
// are day-over-day deltas; they are undefined at index 0 of a series (there
// is no prior day to diff against) and populated by the delta derivation
// step for every later index.
type DailyPoint struct {
	Date      time.Time
	Confirmed int64
	Deceased  int64
	Recovered int64

	NewConfirmed int64
	NewDeceased  int64
	NewRecovered int64
}

// DailySeries is a date-ascending series with one point per distinct date.
// HasDeltas reports whether the New* fields have been derived; consumers of
// deltas must skip index 0 regardless.
type DailySeries struct {
	Points    []DailyPoint
	HasDeltas bool
}

// First returns the earliest point, ok=false for an empty series.
func (s DailySeries) First() (DailyPoint, bool) {
	if len(s.Points) == 0 {
		return DailyPoint{}, false
	}
	return s.Points[0], true
}

// Last returns the latest point, ok=false for an empty series.
func (s DailySeries) Last() (DailyPoint, bool) {
	if len(s.Points) == 0 {
		return DailyPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}
