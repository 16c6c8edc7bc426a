package csv

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/epi-tools/covid-atlas/pkg/store/dataset"
)

type Config struct {
	Path string `mapstructure:"path"`
}

// LoadConfig loads the CSV source configuration from the profile path
func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse csv source config: %w", err)
	}
	if config.Path == "" {
		return nil, fmt.Errorf("csv source config %s has no path", profilePath)
	}
	return &config, nil
}

// StoreFactory builds a file-backed dataset store from a profile config.
func StoreFactory(configPath string) (dataset.Store, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return dataset.NewCSVStore(config.Path), nil
}
