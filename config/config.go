package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the signing secret used when JWT_SECRET is unset. It is
// only accepted in development.
const DefaultJWTSecret = "your-secret-key"

// ErrDefaultJWTSecret is returned by Load outside development when JWT_SECRET
// is unset or still the default
var ErrDefaultJWTSecret = errors.New("JWT_SECRET must be set outside development")

// Config holds the process configuration read from the environment
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	Env         string        `env:"APP_ENV" envDefault:"development"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	Database    Database
	Telemetry   Telemetry
}

// Telemetry configures span export. Tracing stays off until an endpoint is
// given.
type Telemetry struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint string `env:"OTEL_ENDPOINT"`
}

// Database selects and configures the storage engine
type Database struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASS" envDefault:"postgres"`
	Name       string `env:"DB_NAME" envDefault:"get2gether"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"get2gether.db"`
}

// DSN returns the connection string for the configured driver
func (d Database) DSN() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// IsDevelopment reports whether the process runs with development defaults
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file and parses the environment into a Config.
// The returned bool reports whether a .env file was found.
func Load() (Config, bool, error) {
	loaded := godotenv.Load() == nil

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, loaded, fmt.Errorf("parse environment: %w", err)
	}
	switch cfg.Database.Driver {
	case "postgres", "sqlite":
	default:
		return Config{}, loaded, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == DefaultJWTSecret {
		if !cfg.IsDevelopment() {
			return Config{}, loaded, ErrDefaultJWTSecret
		}
		cfg.JWTSecret = DefaultJWTSecret
	}
	return cfg, loaded, nil
}
