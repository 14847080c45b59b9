package middleware

import (
	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/pkg/response"
)

// Identity headers set by the mobile client (or the gateway in front of
// this service).
const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"
)

const scopeKey = "scope"

// Auth requires an X-User-ID header and stores the request scope in the
// gin context for handlers to pick up with GetScope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   userID,
			Username: c.GetHeader(HeaderUsername),
		})
		c.Next()
	}
}

// GetScope returns the request scope set by Auth. Zero value if Auth did
// not run.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
