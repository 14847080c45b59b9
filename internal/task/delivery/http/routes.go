package http

import (
	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Tasks are only created through plan approval in the chat domain, so
// there is no POST here.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), mw.RateLimit(), h.List)
		tasks.GET("/conflicts", mw.Auth(), mw.RateLimit(), h.CheckConflicts)
		tasks.PUT("/:id", mw.Auth(), mw.RateLimit(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), mw.RateLimit(), h.Delete)
	}
}
