package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		c, err := load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Store.Driver != StoreDynamoDB || c.Estimator.DefaultCity != "Karachi" {
			t.Fatalf("unexpected defaults: %+v", c)
		}
		if c.Auth.TTL != 24*time.Hour || c.Estimator.CacheTTL != time.Minute {
			t.Fatalf("unexpected durations: %+v", c)
		}
		if c.AWS.EstimatesTable != "estimates" || !c.Metrics.Enabled || !c.Store.Seed {
			t.Fatalf("unexpected defaults: %+v", c)
		}
		if c.Addr() != ":8080" {
			t.Fatalf("expected :8080, got %q", c.Addr())
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORE_DRIVER", "SQLite")
		t.Setenv("SQLITE_PATH", "/tmp/x.db")
		t.Setenv("DEFAULT_CITY", "Hyderabad")
		t.Setenv("JWT_TTL", "90m")
		t.Setenv("METRICS_ENABLED", "false")
		t.Setenv("RATE_CACHE_SIZE", "8")
		t.Setenv("HTTP_PORT", "9090")

		c, err := load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Store.Driver != StoreSQLite || c.Store.SQLitePath != "/tmp/x.db" {
			t.Fatalf("unexpected store config: %+v", c.Store)
		}
		if c.Estimator.DefaultCity != "Hyderabad" || c.Estimator.CacheSize != 8 {
			t.Fatalf("unexpected estimator config: %+v", c.Estimator)
		}
		if c.Auth.TTL != 90*time.Minute || c.Metrics.Enabled {
			t.Fatalf("unexpected config: %+v", c)
		}
		if c.Addr() != ":9090" {
			t.Fatalf("expected :9090, got %q", c.Addr())
		}
	})

	t.Run("port with leading colon", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("HTTP_PORT", ":7070")
		c, err := load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Addr() != ":7070" {
			t.Fatalf("expected :7070, got %q", c.Addr())
		}
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "auth:\n  secret: from-file\nestimator:\n  default_city: Sukkur\n"
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		c, err := load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Auth.Secret != "from-file" || c.Estimator.DefaultCity != "Sukkur" {
			t.Fatalf("unexpected config: %+v", c)
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		if _, err := load(""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("postgres needs dsn", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORE_DRIVER", "postgres")
		if _, err := load(""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORE_DRIVER", "mongo")
		if _, err := load(""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})
}
