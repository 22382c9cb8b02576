package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/http/response"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
)

// pathID parses the :id segment. Anything that is not a positive integer
// cannot name a record, so callers answer it like a missing one.
func pathID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondValidation(c, []string{response.MsgInvalidJSON})
		return false
	}
	return true
}

func queryFloat(c *gin.Context, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func requestDBC(c *gin.Context) dbctx.Context {
	return dbctx.New(c.Request.Context())
}
