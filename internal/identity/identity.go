// Package identity extracts the caller-supplied user id from the
// X-Sharer-User-Id header. The service trusts this identifier; session
// management lives in front of it.
package identity

import (
	"net/http"
	"strconv"
	"strings"

	"shareit/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	Header     = "X-Sharer-User-Id"
	contextKey = "user_id"
)

func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(Header))
		if raw == "" {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: Header + " header required"})
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + Header + " header"})
			c.Abort()
			return
		}

		c.Set(contextKey, userID)
		c.Next()
	}
}

func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(contextKey)
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}
