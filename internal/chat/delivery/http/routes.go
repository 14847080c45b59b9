package http

import (
	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, mw middleware.Middleware) {
	ch := rg.Group("/chat")
	{
		ch.POST("/messages", mw.Auth(), mw.RateLimit(), h.SendMessage)
		ch.POST("/plan/approve", mw.Auth(), mw.RateLimit(), h.ApprovePlan)
		ch.GET("/history", mw.Auth(), mw.RateLimit(), h.History)
		ch.DELETE("/history", mw.Auth(), mw.RateLimit(), h.Reset)
	}
}
