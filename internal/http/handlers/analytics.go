package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/response"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/services"
)

type AnalyticsHandler struct {
	log       *logger.Logger
	analytics services.AnalyticsService
}

func NewAnalyticsHandler(log *logger.Logger, analytics services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:       log.With("handler", "AnalyticsHandler"),
		analytics: analytics,
	}
}

// GET /api/v1/analytics/personality-distribution
func (h *AnalyticsHandler) PersonalityDistribution(c *gin.Context) {
	dist, err := h.analytics.PersonalityDistribution(requestDBC(c))
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"personality_distribution": dist})
}

// GET /api/v1/analytics/theme-popularity
func (h *AnalyticsHandler) ThemePopularity(c *gin.Context) {
	pop, err := h.analytics.ThemePopularity(requestDBC(c))
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{"theme_popularity": pop})
}

// GET /api/v1/analytics/user-engagement
func (h *AnalyticsHandler) UserEngagement(c *gin.Context) {
	eng, err := h.analytics.UserEngagement(requestDBC(c))
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, eng)
}
