package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound        = errors.New("task not found")
	ErrNoCandidates    = errors.New("no candidates to commit")
	ErrInvalidDate     = errors.New("invalid task date")
	ErrInvalidTime     = errors.New("invalid task time")
	ErrInvalidType     = errors.New("invalid task type")
	ErrInvalidPriority = errors.New("invalid task priority")
)
