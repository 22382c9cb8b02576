package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/db"
	httpMW "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/middleware"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/observability"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/envutil"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

type Config struct {
	Port            string
	Env             string
	Database        db.Config
	CORSOrigins     []string
	MetricsAddr     string
	RedisAddr       string
	Otel            observability.OtelConfig
	ShutdownTimeout time.Duration
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func LoadConfig(log *logger.Logger) Config {
	env := envutil.String("APP_ENV", "development", log)
	return Config{
		Port:        envutil.String("PORT", "8080", log),
		Env:         env,
		Database:    loadDatabaseConfig(log),
		CORSOrigins: envutil.List("CORS_ALLOWED_ORIGINS", httpMW.DefaultAllowedOrigins),
		MetricsAddr: envutil.String("METRICS_ADDR", ":9090", log),
		RedisAddr:   envutil.String("REDIS_ADDR", "", log),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "portfolio-api", log),
			Environment: env,
			Version:     envutil.String("APP_VERSION", "dev", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseOTLPHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", nil)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1, log),
		},
		ShutdownTimeout: time.Duration(envutil.Int("SHUTDOWN_TIMEOUT_SECONDS", 10, log)) * time.Second,
	}
}

func loadDatabaseConfig(log *logger.Logger) db.Config {
	cfg := db.Config{
		Driver:     envutil.String("DB_DRIVER", db.DriverSQLite, log),
		SQLitePath: envutil.String("SQLITE_PATH", "portfolio.db", log),
	}
	if url := envutil.String("DATABASE_URL", "", nil); url != "" {
		cfg.PostgresDSN = url
		return cfg
	}
	cfg.PostgresDSN = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		envutil.String("POSTGRES_HOST", "localhost", log),
		envutil.Int("POSTGRES_PORT", 5432, log),
		envutil.String("POSTGRES_USER", "postgres", log),
		envutil.String("POSTGRES_PASSWORD", "", nil),
		envutil.String("POSTGRES_NAME", "portfolio_development", log),
		envutil.String("POSTGRES_SSLMODE", "disable", log),
	)
	return cfg
}
