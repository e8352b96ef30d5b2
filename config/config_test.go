package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Driver != "postgres" {
		t.Fatalf("expected postgres driver, got %q", cfg.Database.Driver)
	}
	if !strings.Contains(cfg.Database.DSN, "host=db.local") || !strings.Contains(cfg.Database.DSN, "password=secret") {
		t.Fatalf("unexpected dsn: %s", cfg.Database.DSN)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.AI.Enabled() {
		t.Fatalf("AI must be disabled without api key")
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second || cfg.Database.ConnMaxLifetime != 5*time.Minute {
		t.Fatalf("unexpected default durations: %v %v", cfg.Server.ShutdownTimeout, cfg.Database.ConnMaxLifetime)
	}
	if cfg.RateLimit.RequestsPerMinute != 120 || cfg.Database.Port != 5432 {
		t.Fatalf("unexpected default numbers: %d %d", cfg.RateLimit.RequestsPerMinute, cfg.Database.Port)
	}
}

func TestLoadSQLiteAndOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "planzee.db" {
		t.Fatalf("expected sqlite default dsn, got %q", cfg.Database.DSN)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if !cfg.AI.Enabled() {
		t.Fatalf("AI must be enabled with api key")
	}
	if cfg.RateLimit.RequestsPerMinute != 30 {
		t.Fatalf("expected rate limit 30, got %d", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "rate limit not a number", key: "RATE_LIMIT_PER_MINUTE", value: "abc", wantErr: "RATE_LIMIT_PER_MINUTE"},
		{name: "db port not a number", key: "DB_PORT", value: "cinco", wantErr: "DB_PORT"},
		{name: "shutdown timeout not a duration", key: "SERVER_SHUTDOWN_TIMEOUT", value: "logo", wantErr: "SERVER_SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "sqlite")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestHealthLocationFallsBackToUTC(t *testing.T) {
	t.Parallel()

	loc := HealthConfig{Timezone: "Nowhere/Invalid"}.Location()
	if loc != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", loc)
	}
}
