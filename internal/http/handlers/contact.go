package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/response"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/services"
)

const msgContactNotFound = "Contact not found"

type ContactHandler struct {
	log      *logger.Logger
	contacts services.ContactService
}

func NewContactHandler(log *logger.Logger, contacts services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:      log.With("handler", "ContactHandler"),
		contacts: contacts,
	}
}

// GET /api/v1/contacts?status=&recent=true
func (h *ContactHandler) List(c *gin.Context) {
	list, err := h.contacts.List(requestDBC(c), services.ContactQuery{
		Status: c.Query("status"),
		Recent: strings.EqualFold(strings.TrimSpace(c.Query("recent")), "true"),
	})
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, list)
}

// POST /api/v1/contacts
// body: { "name": "...", "email": "...", "message": "..." }
func (h *ContactHandler) Create(c *gin.Context) {
	var in services.ContactInput
	if !bindJSON(c, &in) {
		return
	}
	sub, err := h.contacts.Create(requestDBC(c), in)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, sub)
}

// GET /api/v1/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondNotFound(c, msgContactNotFound)
		return
	}
	sub, err := h.contacts.Get(requestDBC(c), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, sub)
}

// PUT /api/v1/contacts/:id
// body: { "status": "read" }
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondNotFound(c, msgContactNotFound)
		return
	}
	var in services.ContactStatusInput
	if !bindJSON(c, &in) {
		return
	}
	sub, err := h.contacts.UpdateStatus(requestDBC(c), id, in)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, sub)
}

// POST /api/v1/contacts/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondNotFound(c, msgContactNotFound)
		return
	}
	sub, err := h.contacts.MarkRead(requestDBC(c), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, sub)
}

// POST /api/v1/contacts/:id/replied
func (h *ContactHandler) MarkReplied(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.RespondNotFound(c, msgContactNotFound)
		return
	}
	sub, err := h.contacts.MarkReplied(requestDBC(c), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, sub)
}
