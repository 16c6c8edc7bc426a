package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/epi-tools/covid-atlas/pkg/models/domain"
	"github.com/epi-tools/covid-atlas/pkg/server"
	"github.com/epi-tools/covid-atlas/pkg/services/config"
	"github.com/epi-tools/covid-atlas/pkg/services/explorer"
	"github.com/epi-tools/covid-atlas/pkg/store/dataset"
	"github.com/epi-tools/covid-atlas/pkg/store/duckdb"
	"github.com/epi-tools/covid-atlas/pkg/store/snapshot"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Covid Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "covid-atlas.ini",
		"Path to the dataset profile registry")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Found the following profiles:")
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Type: `%s`", profile.Name, profile.Type)
	}

	profileName := os.Getenv("DATASET_PROFILE")
	if profileName == "" {
		profileName = "default"
	}
	profile, err := registry.GetProfile(ctx, profileName)
	if err != nil {
		return fmt.Errorf("failed to resolve dataset profile: %w", err)
	}

	store, err := newDatasetStore(profile)
	if err != nil {
		return fmt.Errorf("failed to open dataset %s: %w", profile.Path, err)
	}

	// Warm the cache so a broken schema fails at startup, not on the first
	// request.
	if _, err := store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Explorer: explorer.NewExplorer(store),
		},
	})

	return api.Start()
}

func newDatasetStore(profile *config.DatasetProfile) (dataset.Store, error) {
	switch profile.Format {
	case domain.ProfileTypeDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: profile.Path})
		if err != nil {
			return nil, err
		}
		return snapshot.NewDatasetStore(db)
	default:
		return dataset.NewCSVStore(profile.Path), nil
	}
}
