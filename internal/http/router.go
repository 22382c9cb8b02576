package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/handlers"
	httpMW "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/middleware"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/response"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/observability"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string
	Metrics     *observability.Metrics

	// TracingService enables otelgin spans under this service name when set.
	TracingService string

	HealthHandler     *httpH.HealthHandler
	PreferenceHandler *httpH.PreferenceHandler
	ContactHandler    *httpH.ContactHandler
	AnalyticsHandler  *httpH.AnalyticsHandler
	AssessmentHandler *httpH.AssessmentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log))
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.AttachRequestData())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.RespondNotFound(c, response.MsgEndpointNotFound)
	})

	api := r.Group("/api")

	// Health
	if cfg.HealthHandler != nil {
		api.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	v1 := api.Group("/v1")
	{
		// Preferences
		if cfg.PreferenceHandler != nil {
			v1.GET("/preferences", cfg.PreferenceHandler.List)
			v1.POST("/preferences", cfg.PreferenceHandler.Create)
			v1.GET("/preferences/:id", cfg.PreferenceHandler.Get)
			v1.PUT("/preferences/:id", cfg.PreferenceHandler.Update)
		}

		// Contacts
		if cfg.ContactHandler != nil {
			v1.GET("/contacts", cfg.ContactHandler.List)
			v1.POST("/contacts", cfg.ContactHandler.Create)
			v1.GET("/contacts/:id", cfg.ContactHandler.Get)
			v1.PUT("/contacts/:id", cfg.ContactHandler.UpdateStatus)
			v1.POST("/contacts/:id/read", cfg.ContactHandler.MarkRead)
			v1.POST("/contacts/:id/replied", cfg.ContactHandler.MarkReplied)
		}

		// Analytics
		if cfg.AnalyticsHandler != nil {
			v1.GET("/analytics/personality-distribution", cfg.AnalyticsHandler.PersonalityDistribution)
			v1.GET("/analytics/theme-popularity", cfg.AnalyticsHandler.ThemePopularity)
			v1.GET("/analytics/user-engagement", cfg.AnalyticsHandler.UserEngagement)
		}

		// Assessment + themes
		if cfg.AssessmentHandler != nil {
			v1.GET("/assessment/questions", cfg.AssessmentHandler.Questions)
			v1.POST("/assessment/score", cfg.AssessmentHandler.Score)
			v1.GET("/themes", cfg.AssessmentHandler.Themes)
		}
	}

	return r
}
