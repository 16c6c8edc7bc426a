package adapters

import (
	"github.com/epi-tools/covid-atlas/pkg/models/domain"
	"github.com/epi-tools/covid-atlas/pkg/models/store"
)

func MapSnapshotRecordToDomain(rec store.SnapshotRecord) domain.Record {
	return domain.Record{
		Date:      rec.Date,
		Continent: rec.Continent,
		Country:   rec.Country,
		Confirmed: rec.Confirmed,
		Active:    rec.Active,
		Recovered: rec.Recovered,
		Deceased:  rec.Deceased,
	}
}

func MapDomainRecordToSnapshot(rec domain.Record) store.SnapshotRecord {
	return store.SnapshotRecord{
		Date:      rec.Date,
		Continent: rec.Continent,
		Country:   rec.Country,
		Confirmed: rec.Confirmed,
		Active:    rec.Active,
		Recovered: rec.Recovered,
		Deceased:  rec.Deceased,
	}
}
