package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/epi-tools/covid-atlas/pkg/adapters"
	"github.com/epi-tools/covid-atlas/pkg/models/store"
	"github.com/epi-tools/covid-atlas/pkg/runtime/terminal/export"
	"github.com/epi-tools/covid-atlas/pkg/services/source"
	"github.com/epi-tools/covid-atlas/pkg/store/duckdb"
	"github.com/epi-tools/covid-atlas/pkg/store/snapshot"
)

type ImportCmd struct {
	profilePath string
	format      string
	dbPath      string
	registry    source.Registry
	reporter    *export.Reporter
}

// NewImportCmd loads a dataset profile and persists it into the embedded
// snapshot database, so later runs can use the duckdb format directly.
func NewImportCmd(registry source.Registry, reporter *export.Reporter) *cobra.Command {
	ic := &ImportCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a dataset into the snapshot database",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.profilePath, "profile", "", "Path to the dataset profile config")
	cmd.Flags().StringVar(&ic.format, "format", "csv", "Dataset source format to import from")
	cmd.Flags().StringVar(&ic.dbPath, "db", "covid-atlas.db", "Path to the snapshot database")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	src, err := ic.registry.Create(ic.format, ic.profilePath)
	if err != nil {
		return fmt.Errorf("failed to create a dataset store for format %q: %w", ic.format, err)
	}

	records, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ic.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer db.Close()

	snapshots, err := snapshot.NewStore(db)
	if err != nil {
		return err
	}

	rows := make([]store.SnapshotRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, adapters.MapDomainRecordToSnapshot(rec))
	}
	if err := snapshots.Add(ctx, rows); err != nil {
		return fmt.Errorf("failed to store snapshots: %w", err)
	}

	stats, err := snapshots.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read snapshot stats: %w", err)
	}

	if err := ic.reporter.Printf("Imported %d records into %s\n", len(rows), ic.dbPath); err != nil {
		return err
	}
	if stats.FirstDate != nil && stats.LastDate != nil {
		return ic.reporter.Printf("Database now holds %d records from %s to %s\n",
			stats.RecordsCount,
			stats.FirstDate.Format("2006-01-02"),
			stats.LastDate.Format("2006-01-02"))
	}
	return ic.reporter.Printf("Database now holds %d records\n", stats.RecordsCount)
}
