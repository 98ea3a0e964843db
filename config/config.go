package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config is populated from environment variables; every field has a
// usable default so running with a bare environment works.
type Config struct {
	OpenF1URL  string `env:"OPENF1_URL" envDefault:"https://api.openf1.org/v1"`
	SessionKey string `env:"F1VIEW_SESSION" envDefault:"latest"`
	NoBrowser  bool   `env:"F1VIEW_NO_BROWSER" envDefault:"false"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return cfg, nil
}
