package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/task"
	"study-plan-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrInvalidDate),
		errors.Is(err, task.ErrInvalidTime),
		errors.Is(err, task.ErrInvalidType),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrNoCandidates):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
