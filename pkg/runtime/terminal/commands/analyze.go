package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
	"github.com/epi-tools/covid-atlas/pkg/runtime/terminal/export"
	"github.com/epi-tools/covid-atlas/pkg/services/explorer"
	"github.com/epi-tools/covid-atlas/pkg/services/source"
)

const dateLayout = "2006-01-02"

type AnalyzeCmd struct {
	profilePath string
	format      string
	continent   string
	country     string
	from        string
	to          string
	registry    source.Registry
	reporter    *export.Reporter
}

func NewAnalyzeCmd(registry source.Registry, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a country over a period",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.profilePath, "profile", "", "Path to the dataset profile config")
	cmd.Flags().StringVar(&ac.format, "format", "csv", "Dataset source format (csv, duckdb)")
	cmd.Flags().StringVar(&ac.continent, "continent", "", "Continent to analyze")
	cmd.Flags().StringVar(&ac.country, "country", "", "Country to analyze")
	cmd.Flags().StringVar(&ac.from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ac.to, "to", "", "Period end (YYYY-MM-DD)")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("continent")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	store, err := ac.registry.Create(ac.format, ac.profilePath)
	if err != nil {
		return fmt.Errorf("failed to create a dataset store for format %q: %w", ac.format, err)
	}

	spec := domain.FilterSpec{Continent: ac.continent, Country: ac.country}
	// A single bound behaves like no bound: the range filter is skipped.
	if ac.from != "" && ac.to != "" {
		from, err := time.Parse(dateLayout, ac.from)
		if err != nil {
			return fmt.Errorf("invalid --from date %q: %w", ac.from, err)
		}
		to, err := time.Parse(dateLayout, ac.to)
		if err != nil {
			return fmt.Errorf("invalid --to date %q: %w", ac.to, err)
		}
		spec.Range = &domain.DateRange{Start: from, End: to}
	}

	dashboard, err := explorer.NewExplorer(store).BuildDashboard(ctx, spec)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	return ac.reporter.Handle(dashboard)
}
