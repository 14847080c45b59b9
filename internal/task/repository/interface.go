// Package repository defines persistence interfaces for the task domain.
package repository

import (
	"context"
	"errors"

	"study-plan-assistant/internal/model"
)

// ErrNotFound is returned when a task does not exist for the user.
var ErrNotFound = errors.New("task not found in repository")

// TaskRepository persists tasks. All reads and writes are scoped to one
// user; a task is only visible to the user who owns it.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) error
	GetByID(ctx context.Context, userID, id string) (model.Task, error)

	// ListByUser returns all of the user's tasks ordered by date then
	// start time.
	ListByUser(ctx context.Context, userID string) ([]model.Task, error)

	// ListByUserDate returns the user's tasks on one ISO date.
	ListByUserDate(ctx context.Context, userID, date string) ([]model.Task, error)

	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, userID, id string) error
}
