package app

import (
	"reflect"
	"testing"
	"time"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/db"
	httpMW "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/middleware"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DATABASE_URL", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT_SECONDS", "OTEL_ENABLED", "SQLITE_PATH"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig(logger.Nop())

	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr = %q", cfg.Addr())
	}
	if cfg.Database.Driver != db.DriverSQLite || cfg.Database.SQLitePath != "portfolio.db" {
		t.Fatalf("unexpected database config %+v", cfg.Database)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, httpMW.DefaultAllowedOrigins) {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.Otel.Enabled {
		t.Fatalf("tracing must be off by default")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/portfolio")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SAMPLER_RATIO", "0.5")

	cfg := LoadConfig(logger.Nop())
	if cfg.Addr() != ":3001" {
		t.Fatalf("Addr = %q", cfg.Addr())
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.PostgresDSN != "postgres://u:p@db:5432/portfolio" {
		t.Fatalf("unexpected database config %+v", cfg.Database)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if !cfg.Otel.Enabled || cfg.Otel.SampleRatio != 0.5 {
		t.Fatalf("unexpected otel config %+v", cfg.Otel)
	}
	if rc := wireRouter(logger.Nop(), cfg, Handlers{}, nil); rc.TracingService != cfg.Otel.ServiceName {
		t.Fatalf("tracing service = %q", rc.TracingService)
	}
}

func TestLoadConfigPostgresComponents(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "pg")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("POSTGRES_NAME", "portfolio_test")
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("POSTGRES_SSLMODE", "")

	cfg := LoadConfig(logger.Nop())
	want := "host=pg port=6543 user=postgres password= dbname=portfolio_test sslmode=disable"
	if cfg.Database.PostgresDSN != want {
		t.Fatalf("PostgresDSN = %q, want %q", cfg.Database.PostgresDSN, want)
	}
}
