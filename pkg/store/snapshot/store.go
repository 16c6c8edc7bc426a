package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/epi-tools/covid-atlas/pkg/models/store"
)

// Store persists country-date snapshots in an embedded database so a dataset
// can be imported once and re-served without re-parsing the source file.
type Store interface {
	Add(ctx context.Context, records []store.SnapshotRecord) error
	GetAll(ctx context.Context) ([]store.SnapshotRecord, error)
	Stats(ctx context.Context) (*store.SnapshotStats, error)
}

type snapshotStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &snapshotStore{db: db}, nil
}

func (s *snapshotStore) Add(ctx context.Context, records []store.SnapshotRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO covid_snapshots (
			continent, country, report_date, confirmed, active, recovered, deceased
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			record.Continent,
			record.Country,
			record.Date,
			record.Confirmed,
			record.Active,
			record.Recovered,
			record.Deceased,
		)
		if err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
	}

	return nil
}

func (s *snapshotStore) GetAll(ctx context.Context) ([]store.SnapshotRecord, error) {
	query := `
		SELECT continent, country, report_date, confirmed, active, recovered, deceased
		FROM covid_snapshots
		ORDER BY report_date ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()
	return scanSnapshotRows(rows)
}

func (s *snapshotStore) Stats(ctx context.Context) (*store.SnapshotStats, error) {
	query := `SELECT COUNT(*), MIN(report_date), MAX(report_date) FROM covid_snapshots`

	var total int64
	var first, last sql.NullTime
	if err := s.db.QueryRowContext(ctx, query).Scan(&total, &first, &last); err != nil {
		return nil, fmt.Errorf("get snapshot stats: %w", err)
	}

	stats := &store.SnapshotStats{RecordsCount: total}
	if first.Valid {
		t := first.Time
		stats.FirstDate = &t
	}
	if last.Valid {
		t := last.Time
		stats.LastDate = &t
	}
	return stats, nil
}

func scanSnapshotRows(rows *sql.Rows) ([]store.SnapshotRecord, error) {
	records := make([]store.SnapshotRecord, 0)
	for rows.Next() {
		var (
			continent, country                     string
			date                                   time.Time
			confirmed, active, recovered, deceased int64
		)
		if err := rows.Scan(&continent, &country, &date, &confirmed, &active, &recovered, &deceased); err != nil {
			return nil, err
		}
		records = append(records, store.SnapshotRecord{
			Continent: continent,
			Country:   country,
			Date:      date,
			Confirmed: confirmed,
			Active:    active,
			Recovered: recovered,
			Deceased:  deceased,
		})
	}
	return records, rows.Err()
}
