package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/epi-tools/covid-atlas/pkg/runtime/terminal/export"
	"github.com/epi-tools/covid-atlas/pkg/services/explorer"
	"github.com/epi-tools/covid-atlas/pkg/services/source"
)

type ContinentsCmd struct {
	profilePath string
	format      string
	registry    source.Registry
	reporter    *export.Reporter
}

func NewContinentsCmd(registry source.Registry, reporter *export.Reporter) *cobra.Command {
	cc := &ContinentsCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "continents",
		Short: "List continents present in the dataset",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilePath, "profile", "", "Path to the dataset profile config")
	cmd.Flags().StringVar(&cc.format, "format", "csv", "Dataset source format (csv, duckdb)")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (cc *ContinentsCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	store, err := cc.registry.Create(cc.format, cc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to create a dataset store for format %q: %w", cc.format, err)
	}

	continents, err := explorer.NewExplorer(store).ListContinents(ctx)
	if err != nil {
		return fmt.Errorf("failed to list continents: %w", err)
	}

	return cc.reporter.HandleList("Continents", continents)
}

type CountriesCmd struct {
	profilePath string
	format      string
	continent   string
	registry    source.Registry
	reporter    *export.Reporter
}

func NewCountriesCmd(registry source.Registry, reporter *export.Reporter) *cobra.Command {
	cc := &CountriesCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List countries within a continent",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilePath, "profile", "", "Path to the dataset profile config")
	cmd.Flags().StringVar(&cc.format, "format", "csv", "Dataset source format (csv, duckdb)")
	cmd.Flags().StringVar(&cc.continent, "continent", "", "Continent to list countries for")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("continent")

	return cmd
}

func (cc *CountriesCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	store, err := cc.registry.Create(cc.format, cc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to create a dataset store for format %q: %w", cc.format, err)
	}

	countries, err := explorer.NewExplorer(store).ListCountries(ctx, cc.continent)
	if err != nil {
		return fmt.Errorf("failed to list countries: %w", err)
	}

	return cc.reporter.HandleList(fmt.Sprintf("Countries in %s", cc.continent), countries)
}
