// Package config loads runtime configuration from environment variables.
//
// Values are mapped onto the Config struct via `env` tags using the
// caarlos0/env library; every field carries an envDefault so the server
// starts with no environment at all. The defaults match how the app is
// normally run: port 5500, the database file at the project root, and the
// frontend assets in ./frontend.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings.
type Config struct {
	// Port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"5500"`

	// DBPath is the SQLite database file. Created (with parent
	// directories) on startup if absent.
	DBPath string `env:"DB_PATH" envDefault:"db.sqlite"`

	// FrontendDir is the directory of static assets. contacts.html inside
	// it is served as the index document.
	FrontendDir string `env:"FRONTEND_DIR" envDefault:"frontend"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}
