package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is built once at
// process start and passed by reference into each constructor.
type Config struct {
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	AdminAddr       string        `env:"ADMIN_ADDR" envDefault:":9091"`
	DatabaseDSN     string        `env:"DATABASE_DSN,required"`
	JWTSecret       string        `env:"JWT_SECRET,required"`
	JWTExpiry       time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	LockoutWindow   time.Duration `env:"LOCKOUT_WINDOW" envDefault:"5m"`
	MaxBodySize     int64         `env:"MAX_BODY_SIZE_BYTES" envDefault:"1048576"` // 1MB
	LoginRatePerSec float64       `env:"LOGIN_RATE_PER_SECOND" envDefault:"1"`
	LoginRateBurst  int           `env:"LOGIN_RATE_BURST" envDefault:"5"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
