// Package http is the HTTP delivery layer for the task domain.
package http

import (
	"study-plan-assistant/internal/task"
	pkgLog "study-plan-assistant/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
