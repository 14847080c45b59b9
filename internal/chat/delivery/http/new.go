// Package http is the HTTP delivery layer for the chat domain.
package http

import (
	"study-plan-assistant/internal/chat"
	pkgLog "study-plan-assistant/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
