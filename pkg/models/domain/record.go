package domain

import "time"

// Record is one country-date snapshot of cumulative counters from the source
// dataset. Counters are cumulative to date, non-negative by domain convention.
type Record struct {
	Date      time.Time
	Continent string
	Country   string
	Confirmed int64
	Active    int64
	Recovered int64
	Deceased  int64
}

// DateRange is an inclusive calendar-day range. Bounds are normalized to
// midnight before comparison so time-of-day components never exclude
// boundary dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// FilterSpec narrows the dataset to one continent and country, optionally
// restricted to a date range. A nil Range means no date restriction; this is
// how a missing or partial user-supplied range is represented.
type FilterSpec struct {
	Continent string
	Country   string
	Range     *DateRange
}
