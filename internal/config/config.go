package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/GTDGit/paylink/internal/models"
	"github.com/GTDGit/paylink/internal/utils"
)

// Secret modes accepted in PROVIDER3_SECRET_MODE.
const (
	SecretModeFixed = "fixed"
	SecretModeRange = "range"
)

// Config holds all application configuration loaded from environment variables.
// Every key has a default, so an empty environment reproduces the demo run.
type Config struct {
	Env string `env:"ENV, default=development"`

	System3 System3Config `env:", prefix=PROVIDER3_"`
}

// System3Config selects how system3 obtains its signing secret.
type System3Config struct {
	SecretMode string `env:"SECRET_MODE, default=fixed"`
	Salt       string `env:"SECRET, default=myauch"`
	KeyMin     int    `env:"KEY_MIN, default=0"`
	KeyMax     int    `env:"KEY_MAX, default=200"`
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first.
func Load(ctx context.Context) (*Config, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom processes configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if _, err := cfg.System3.Secret(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Secret maps the configured mode onto the system3 secret variant.
func (c System3Config) Secret() (models.Secret, error) {
	switch c.SecretMode {
	case SecretModeFixed:
		return models.FixedSecret{Value: c.Salt}, nil
	case SecretModeRange:
		return models.KeyRangeSecret{Lower: c.KeyMin, Upper: c.KeyMax}, nil
	default:
		return nil, fmt.Errorf("%w: PROVIDER3_SECRET_MODE must be %q or %q, got %q",
			utils.ErrInvalidArgument, SecretModeFixed, SecretModeRange, c.SecretMode)
	}
}
