package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epi-tools/covid-atlas/pkg/models/store"
)

func TestNewStore(t *testing.T) {
	t.Run("nil connection is rejected", func(t *testing.T) {
		_, err := NewStore(nil)
		assert.Error(t, err)
	})
}

func TestSnapshotStore_Add(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("inserts every record through one prepared statement", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		mock.ExpectPrepare("INSERT INTO covid_snapshots")
		mock.ExpectExec("INSERT INTO covid_snapshots").
			WithArgs("América", "Chile", date, int64(10), int64(5), int64(3), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO covid_snapshots").
			WithArgs("América", "Chile", date.AddDate(0, 0, 1), int64(15), int64(6), int64(5), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		records := []store.SnapshotRecord{
			{Continent: "América", Country: "Chile", Date: date, Confirmed: 10, Active: 5, Recovered: 3, Deceased: 1},
			{Continent: "América", Country: "Chile", Date: date.AddDate(0, 0, 1), Confirmed: 15, Active: 6, Recovered: 5, Deceased: 2},
		}

		require.NoError(t, s.Add(ctx, records))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		require.NoError(t, s.Add(ctx, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSnapshotStore_GetAll(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{
		"continent", "country", "report_date", "confirmed", "active", "recovered", "deceased",
	}).
		AddRow("América", "Chile", date, int64(10), int64(5), int64(3), int64(1)).
		AddRow("América", "Chile", date.AddDate(0, 0, 1), int64(15), int64(6), int64(5), int64(2))

	mock.ExpectQuery("SELECT (.+) FROM covid_snapshots").WillReturnRows(rows)

	records, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Chile", records[0].Country)
	assert.Equal(t, int64(15), records[1].Confirmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotStore_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("reports count and date span", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		first := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT COUNT").WillReturnRows(
			sqlmock.NewRows([]string{"count", "min", "max"}).AddRow(int64(20), first, last))

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(20), stats.RecordsCount)
		require.NotNil(t, stats.FirstDate)
		assert.Equal(t, first, *stats.FirstDate)
		require.NotNil(t, stats.LastDate)
		assert.Equal(t, last, *stats.LastDate)
	})

	t.Run("empty table has no date span", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db)
		require.NoError(t, err)

		mock.ExpectQuery("SELECT COUNT").WillReturnRows(
			sqlmock.NewRows([]string{"count", "min", "max"}).AddRow(int64(0), nil, nil))

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.RecordsCount)
		assert.Nil(t, stats.FirstDate)
		assert.Nil(t, stats.LastDate)
	})
}
