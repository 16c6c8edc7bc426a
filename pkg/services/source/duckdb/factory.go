package duckdb

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/epi-tools/covid-atlas/pkg/store/dataset"
	duckdbstore "github.com/epi-tools/covid-atlas/pkg/store/duckdb"
	"github.com/epi-tools/covid-atlas/pkg/store/snapshot"
)

type Config struct {
	DbPath string `mapstructure:"db_path"`
}

// LoadConfig loads the DuckDB source configuration from the profile path
func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse duckdb source config: %w", err)
	}
	if config.DbPath == "" {
		return nil, fmt.Errorf("duckdb source config %s has no db_path", profilePath)
	}
	return &config, nil
}

// StoreFactory builds a dataset store serving an imported snapshot table.
func StoreFactory(configPath string) (dataset.Store, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := duckdbstore.NewDB(duckdbstore.Settings{DbPath: config.DbPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}
	return snapshot.NewDatasetStore(db)
}
