package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"ads-dashboard/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs tagged with envPrefix read their variables with that
// prefix. See the types in the configs package for defaults. Use Load to
// construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is only
	// logged at startup.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds the listener settings. Its variables carry no prefix.
	HTTP configs.HTTP

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Dataset selects the report source (DATASET_ prefix).
	Dataset configs.Dataset `envPrefix:"DATASET_"`

	// Psql configures the Postgres dataset source (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from environment variables into a Config. Any
// files given are read first as dotenv files; a missing file is not an
// error and variables already set in the environment win. The result is
// validated before it is returned.
func Load(dotenv ...string) (Config, error) {
	var cfg Config
	for _, name := range dotenv {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Dataset.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
