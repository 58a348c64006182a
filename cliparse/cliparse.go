package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/tbodnar/saloon/models"
)

type Config struct {
	Port         int           `env:"PORT" envDefault:"3001"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	DatabaseType string        `env:"DATABASE_TYPE" envDefault:"sqlite"`
	TokenSecret  string        `env:"TOKEN_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	LifePolicy   string        `env:"LIFE_POLICY" envDefault:"reject"`
}

// ParseFlags builds the configuration from CLI flags with environment
// fallback. A .env file in the working directory is loaded first if
// present. CLI flags take precedence over environment variables.
func ParseFlags(args []string) (Config, error) {
	// Optional .env for local development
	_ = godotenv.Load()

	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	var cfg Config
	fs := flag.NewFlagSet("saloon", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Session token signing secret (prefer env)")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", 0, "Session token lifetime")
	fs.StringVar(&cfg.LifePolicy, "life-policy", "", "Below-zero life policy (reject or clamp)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		cfg.Port = fromEnv.Port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fromEnv.DatabaseURL
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = fromEnv.DatabaseType
	}
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = fromEnv.TokenSecret
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = fromEnv.TokenTTL
	}
	if cfg.LifePolicy == "" {
		cfg.LifePolicy = fromEnv.LifePolicy
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required")
	}
	if cfg.LifePolicy != models.LifePolicyReject && cfg.LifePolicy != models.LifePolicyClamp {
		return Config{}, fmt.Errorf("unsupported life policy %q", cfg.LifePolicy)
	}

	return cfg, nil
}

// Driver maps the configured database type onto a database/sql driver name.
func (c Config) Driver() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
