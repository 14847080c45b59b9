package httpserver

import (
	"context"

	"study-plan-assistant/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "study-plan-assistant/internal/chat/delivery/http"
	scheduleHTTP "study-plan-assistant/internal/schedule/delivery/http"
	taskHTTP "study-plan-assistant/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.mw)
	srv.l.Infof(ctx, "Chat routes registered under /api/v1/chat")

	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)
	srv.l.Infof(ctx, "Task routes registered under /api/v1/tasks")

	if srv.scheduleHandler != nil {
		scheduleHTTP.RegisterRoutes(api, srv.scheduleHandler, srv.mw)
		srv.l.Infof(ctx, "Schedule routes registered under /api/v1/schedule")
	} else {
		srv.l.Infof(ctx, "Schedule handler not configured, skipping schedule routes")
	}

	return nil
}
