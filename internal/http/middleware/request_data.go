package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/ctxutil"
)

// AttachRequestData records the caller's IP and user agent on the request
// context. Preference records persist both.
func AttachRequestData() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{
			ClientIP:  c.ClientIP(),
			UserAgent: strings.TrimSpace(c.Request.UserAgent()),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
