package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const SnapshotTableSchema = `
	CREATE TABLE IF NOT EXISTS covid_snapshots (
		continent VARCHAR NOT NULL,
		country VARCHAR NOT NULL,
		report_date DATE NOT NULL,
		confirmed BIGINT NOT NULL DEFAULT 0,
		active BIGINT NOT NULL DEFAULT 0,
		recovered BIGINT NOT NULL DEFAULT 0,
		deceased BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (continent, country, report_date)
	);
`

var bootQueries = []string{
	SnapshotTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
