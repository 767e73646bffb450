package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "development")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Fatalf("TokenTTL = %v, want %v", cfg.TokenTTL, 168*time.Hour)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("Driver = %q, want postgres", cfg.Database.Driver)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("Port = %q, want 9000", cfg.Port)
	}
	if got := cfg.Database.DSN(); got != "/tmp/x.db" {
		t.Fatalf("DSN() = %q, want /tmp/x.db", got)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	if _, _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want unsupported driver error")
	}
}

func TestPostgresDSN(t *testing.T) {
	d := Database{Driver: "postgres", Host: "db", User: "u", Password: "p", Name: "n", Port: "5433", SSLMode: "disable"}
	want := "host=db user=u password=p dbname=n port=5433 sslmode=disable TimeZone=UTC"
	if got := d.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

func TestLoadJWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		want    string
		wantErr error
	}{
		{name: "development falls back", env: "development", secret: "", want: DefaultJWTSecret},
		{name: "production without secret", env: "production", secret: "", wantErr: ErrDefaultJWTSecret},
		{name: "production with default secret", env: "production", secret: DefaultJWTSecret, wantErr: ErrDefaultJWTSecret},
		{name: "production with secret", env: "production", secret: "s3cr3t", want: "s3cr3t"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "postgres")
			t.Setenv("APP_ENV", tc.env)
			t.Setenv("JWT_SECRET", tc.secret)

			cfg, _, err := Load()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tc.wantErr)
			}
			if err == nil && cfg.JWTSecret != tc.want {
				t.Fatalf("JWTSecret = %q, want %q", cfg.JWTSecret, tc.want)
			}
		})
	}
}

func TestLoadTelemetry(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("APP_ENV", "development")
	t.Setenv("OTEL_ENDPOINT", "http://collector:4318")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Endpoint != "http://collector:4318" {
		t.Fatalf("Telemetry = %+v", cfg.Telemetry)
	}
}
