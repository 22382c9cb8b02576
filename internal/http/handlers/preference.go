package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/response"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/ctxutil"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/services"
)

const msgPreferenceNotFound = "Preference not found"

type PreferenceHandler struct {
	log         *logger.Logger
	preferences services.PreferenceService
}

func NewPreferenceHandler(log *logger.Logger, preferences services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		log:         log.With("handler", "PreferenceHandler"),
		preferences: preferences,
	}
}

// GET /api/v1/preferences?theme=&min_score=&max_score=
func (h *PreferenceHandler) List(c *gin.Context) {
	list, err := h.preferences.List(requestDBC(c), services.PreferenceQuery{
		Theme:    c.Query("theme"),
		MinScore: queryFloat(c, "min_score"),
		MaxScore: queryFloat(c, "max_score"),
	})
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, list)
}

// POST /api/v1/preferences
// body: { "personality_score": 45.2, "theme": "professional" }
func (h *PreferenceHandler) Create(c *gin.Context) {
	var in services.PreferenceInput
	if !bindJSON(c, &in) {
		return
	}
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
		in.UserAgent = rd.UserAgent
		in.IPAddress = rd.ClientIP
	} else {
		in.UserAgent = c.Request.UserAgent()
		in.IPAddress = c.ClientIP()
	}
	rec, err := h.preferences.Create(requestDBC(c), in)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, rec)
}

// GET /api/v1/preferences/:id
func (h *PreferenceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondNotFound(c, msgPreferenceNotFound)
		return
	}
	rec, err := h.preferences.Get(requestDBC(c), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, rec)
}

// PUT /api/v1/preferences/:id
// body: { "theme": "creative" }
func (h *PreferenceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondNotFound(c, msgPreferenceNotFound)
		return
	}
	var in services.PreferenceThemeInput
	if !bindJSON(c, &in) {
		return
	}
	rec, err := h.preferences.UpdateTheme(requestDBC(c), id, in)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, rec)
}
