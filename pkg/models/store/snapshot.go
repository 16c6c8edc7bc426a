package store

import "time"

// SnapshotRecord is the persisted form of one country-date snapshot.
type SnapshotRecord struct {
	Continent string
	Country   string
	Date      time.Time
	Confirmed int64
	Active    int64
	Recovered int64
	Deceased  int64
}

type SnapshotStats struct {
	RecordsCount int64
	FirstDate    *time.Time
	LastDate     *time.Time
}
