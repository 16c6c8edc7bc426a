package analytics

import (
	"time"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
)

// Filter narrows records to one continent and country, optionally restricted
// to an inclusive date range. Both range bounds and record dates are
// normalized to midnight before comparison so boundary dates are never
// excluded by a time-of-day component. A nil range passes everything
// through, which is how a missing or partial user-supplied range behaves.
func Filter(records []domain.Record, spec domain.FilterSpec) []domain.Record {
	var start, end time.Time
	if spec.Range != nil {
		start = atMidnight(spec.Range.Start)
		end = atMidnight(spec.Range.End)
	}

	filtered := make([]domain.Record, 0)
	for _, rec := range records {
		if rec.Continent != spec.Continent || rec.Country != spec.Country {
			continue
		}
		if spec.Range != nil {
			d := atMidnight(rec.Date)
			if d.Before(start) || d.After(end) {
				continue
			}
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// atMidnight truncates to the calendar day in UTC.
func atMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
