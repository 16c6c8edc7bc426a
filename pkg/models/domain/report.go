package domain

import (
	"fmt"
	"time"
)

type GrowthKind string

const (
	GrowthPercentage GrowthKind = "percentage"
	GrowthMultiplier GrowthKind = "multiplier"
)

// GrowthRate describes period growth of the cumulative confirmed counter.
// Growth up to a doubling is framed as a percentage; beyond that as a
// multiplier.
type GrowthRate struct {
	RawGrowth int64
	Factor    float64
	Kind      GrowthKind
}

// Display renders the rate in its tagged framing.
func (g GrowthRate) Display() string {
	if g.Kind == GrowthMultiplier {
		return fmt.Sprintf("%.2f veces (crecimiento multiplicativo)", g.Factor)
	}
	return fmt.Sprintf("%.2f%%", (g.Factor-1)*100)
}

// Summary aggregates the filtered period: totals over the filtered rows and
// mean/peak of the derived daily new-confirmed values. HasPeak is false when
// the series has no defined deltas (fewer than two daily points).
type Summary struct {
	ConfirmedTotal int64
	ActiveTotal    int64
	RecoveredTotal int64
	DeceasedTotal  int64
	Days           int

	AvgDailyNew  float64
	PeakDailyNew int64
	PeakDate     time.Time
	HasPeak      bool
}

// Dashboard is the full computed result for one filter selection. Growth is
// nil when the filtered series is empty.
type Dashboard struct {
	Filter      FilterSpec
	Records     []Record
	Series      DailySeries
	Summary     Summary
	Resurgence  bool
	Growth      *GrowthRate
	Conclusions []string
}
