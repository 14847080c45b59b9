package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "study-plan-assistant/internal/chat/delivery/http"
	"study-plan-assistant/internal/middleware"
	scheduleHTTP "study-plan-assistant/internal/schedule/delivery/http"
	taskHTTP "study-plan-assistant/internal/task/delivery/http"
	"study-plan-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	mw middleware.Middleware

	// Domain handlers
	chatHandler     *chatHTTP.Handler
	taskHandler     *taskHTTP.Handler
	scheduleHandler *scheduleHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ChatHandler     *chatHTTP.Handler
	TaskHandler     *taskHTTP.Handler
	ScheduleHandler *scheduleHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		chatHandler:     cfg.ChatHandler,
		taskHandler:     cfg.TaskHandler,
		scheduleHandler: cfg.ScheduleHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
