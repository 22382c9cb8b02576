package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/apierr"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
)

const (
	MsgInvalidJSON      = "Request body must be valid JSON"
	MsgEndpointNotFound = "Endpoint not found"
	MsgInternal         = "Internal server error"
)

// ErrorEnvelope carries either a single message (404, 500) or the full list of
// validation messages (400).
type ErrorEnvelope struct {
	Error any `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondValidation(c *gin.Context, messages []string) {
	if messages == nil {
		messages = []string{}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorEnvelope{Error: messages})
}

func RespondNotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorEnvelope{Error: message})
}

func RespondInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorEnvelope{Error: MsgInternal})
}

// RespondError maps a service error onto the wire. Unclassified errors are
// logged and answered with the generic 500 body.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	if ae, ok := apierr.From(err); ok {
		switch ae.Status {
		case http.StatusBadRequest:
			RespondValidation(c, ae.Messages)
			return
		case http.StatusNotFound:
			msg := "Not found"
			if len(ae.Messages) > 0 {
				msg = ae.Messages[0]
			}
			RespondNotFound(c, msg)
			return
		}
	}
	if log != nil {
		log.Error("request failed", "path", c.FullPath(), "error", err)
	}
	_ = c.Error(err)
	RespondInternal(c)
}
