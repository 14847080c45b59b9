package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/chat"
	"study-plan-assistant/internal/task"
	"study-plan-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrInvalidSelection),
		errors.Is(err, task.ErrInvalidDate),
		errors.Is(err, task.ErrInvalidTime):
		response.Error(c, err, nil)
	case errors.Is(err, chat.ErrNoPendingPlan):
		response.NotFound(c, err)
	case errors.Is(err, chat.ErrTurnInProgress),
		errors.Is(err, chat.ErrPlanConflicts):
		response.Conflict(c, err)
	case errors.Is(err, chat.ErrAssistantUnavailable):
		response.ServiceUnavailable(c, err)
	default:
		response.InternalError(c, err)
	}
}
