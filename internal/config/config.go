package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application. The store client is
// built from it once at process start and is read-only afterwards.
type Config struct {
	// GitHub content store settings
	GithubToken   string `envconfig:"GITHUB_TOKEN"`
	GithubRepo    string `envconfig:"GITHUB_REPO" default:"orb1ispare/piano-sheets-db"`
	GithubBranch  string `envconfig:"GITHUB_BRANCH" default:"main"`
	CatalogPath   string `envconfig:"CATALOG_PATH" default:"sheets/piano_sheets.json"`
	FavoritesPath string `envconfig:"FAVORITES_PATH" default:"users/data.js"`

	// Application settings
	Port  string `envconfig:"PORT" default:"5000"`
	Debug bool   `envconfig:"DEBUG" default:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
