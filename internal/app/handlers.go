package app

import (
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http"
	httpH "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/handlers"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/observability"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Preference *httpH.PreferenceHandler
	Contact    *httpH.ContactHandler
	Analytics  *httpH.AnalyticsHandler
	Assessment *httpH.AssessmentHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Preference: httpH.NewPreferenceHandler(log, services.Preference),
		Contact:    httpH.NewContactHandler(log, services.Contact),
		Analytics:  httpH.NewAnalyticsHandler(log, services.Analytics),
		Assessment: httpH.NewAssessmentHandler(log, services.Assessment),
	}
}

// wireRouter assembles the router inputs; http.NewServer builds the engine.
func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) http.RouterConfig {
	rc := http.RouterConfig{
		Log:               log,
		CORSOrigins:       cfg.CORSOrigins,
		Metrics:           metrics,
		HealthHandler:     handlers.Health,
		PreferenceHandler: handlers.Preference,
		ContactHandler:    handlers.Contact,
		AnalyticsHandler:  handlers.Analytics,
		AssessmentHandler: handlers.Assessment,
	}
	if cfg.Otel.Enabled {
		rc.TracingService = cfg.Otel.ServiceName
	}
	return rc
}
