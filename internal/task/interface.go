package task

import (
	"context"

	"study-plan-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Commit turns approved plan candidates into stored tasks and optionally
	// exports them to Google Calendar.
	Commit(ctx context.Context, sc model.Scope, input CommitInput) (CommitOutput, error)

	// List returns the user's tasks, optionally filtered to one date.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Update applies a partial update to one task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes one task by ID.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// CheckTimeConflict reports the user's tasks that overlap the given
	// time window. Used by the app before manual edits.
	CheckTimeConflict(ctx context.Context, sc model.Scope, input CheckConflictInput) ([]model.Task, error)
}
