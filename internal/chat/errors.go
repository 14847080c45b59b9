package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage         = errors.New("message is empty")
	ErrTurnInProgress       = errors.New("another message is still being processed")
	ErrNoPendingPlan        = errors.New("no pending plan to approve")
	ErrInvalidSelection     = errors.New("selected task index out of range")
	ErrPlanConflicts        = errors.New("plan conflicts with existing schedule")
	ErrAssistantUnavailable = errors.New("assistant is unavailable")
)
