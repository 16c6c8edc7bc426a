package api

import "time"

type Continent struct {
	Name string `json:"name"`
}

type Country struct {
	Name string `json:"name"`
}

type DateBounds struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Record struct {
	Date      time.Time `json:"date"`
	Continent string    `json:"continent"`
	Country   string    `json:"country"`
	Confirmed int64     `json:"confirmed"`
	Active    int64     `json:"active"`
	Recovered int64     `json:"recovered"`
	Deceased  int64     `json:"deceased"`
}

// DailyPoint mirrors one aggregated date. The delta fields are pointers so
// the first point of a series, where no prior day exists, serializes without
// them instead of faking a zero.
type DailyPoint struct {
	Date         time.Time `json:"date"`
	Confirmed    int64     `json:"confirmed"`
	Deceased     int64     `json:"deceased"`
	Recovered    int64     `json:"recovered"`
	NewConfirmed *int64    `json:"new_confirmed,omitempty"`
	NewDeceased  *int64    `json:"new_deceased,omitempty"`
	NewRecovered *int64    `json:"new_recovered,omitempty"`
}

type GrowthRate struct {
	RawGrowth   int64   `json:"raw_growth"`
	Factor      float64 `json:"factor"`
	Kind        string  `json:"kind"`
	DisplayText string  `json:"display_text"`
}

type Summary struct {
	ConfirmedTotal int64      `json:"confirmed_total"`
	ActiveTotal    int64      `json:"active_total"`
	RecoveredTotal int64      `json:"recovered_total"`
	DeceasedTotal  int64      `json:"deceased_total"`
	Days           int        `json:"days"`
	AvgDailyNew    float64    `json:"avg_daily_new"`
	PeakDailyNew   int64      `json:"peak_daily_new"`
	PeakDate       *time.Time `json:"peak_date,omitempty"`
}

type Dashboard struct {
	Continent   string       `json:"continent"`
	Country     string       `json:"country"`
	Summary     Summary      `json:"summary"`
	Series      []DailyPoint `json:"series"`
	Records     []Record     `json:"records"`
	Resurgence  bool         `json:"resurgence_detected"`
	Growth      *GrowthRate  `json:"growth,omitempty"`
	Conclusions []string     `json:"conclusions"`
}
