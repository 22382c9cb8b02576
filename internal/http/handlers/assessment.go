package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/response"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/services"
)

type AssessmentHandler struct {
	log        *logger.Logger
	assessment services.AssessmentService
}

func NewAssessmentHandler(log *logger.Logger, assessment services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		log:        log.With("handler", "AssessmentHandler"),
		assessment: assessment,
	}
}

// GET /api/v1/assessment/questions
func (h *AssessmentHandler) Questions(c *gin.Context) {
	response.RespondOK(c, gin.H{"questions": h.assessment.Questions()})
}

// POST /api/v1/assessment/score
// body: { "answers": { "1": 0.3, "2": 0.8, ... } }
func (h *AssessmentHandler) Score(c *gin.Context) {
	var req services.ScoreRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.assessment.Score(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/v1/themes
func (h *AssessmentHandler) Themes(c *gin.Context) {
	response.RespondOK(c, h.assessment.Themes())
}
