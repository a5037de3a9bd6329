package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type Config struct {
	SourceDatabase SourceDatabase `envPrefix:"SOURCE_DATABASE_"`
	HTTP           HTTP           `envPrefix:"HTTP_"`
	LogLevel       string         `env:"LOG_LEVEL" envDefault:"info"`
	FetchTimeout   time.Duration  `env:"FETCH_TIMEOUT" envDefault:"5s"`
}

// SourceDatabase points at the game database that owns the playerdata table.
type SourceDatabase struct {
	Host     string `env:"HOST,required,notEmpty"`
	Port     int    `env:"PORT" envDefault:"3306"`
	User     string `env:"USER,required,notEmpty"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"seichiassist"`
}

type HTTP struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"8080"`
}

func (d SourceDatabase) Addr() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

func (h HTTP) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

func Load() (*Config, error) {
	// .env is optional, real deployments pass plain environment variables
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if !validPort(c.SourceDatabase.Port) {
		return fmt.Errorf("SOURCE_DATABASE_PORT must be between 1 and 65535, got %d", c.SourceDatabase.Port)
	}
	if !validPort(c.HTTP.Port) {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	return nil
}

func validPort(p int) bool {
	return p > 0 && p <= 65535
}

var Module = fx.Provide(Load)
