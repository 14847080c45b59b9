// Package sqlite implements the task repository on the service's SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/task/repository"
	pkgLog "study-plan-assistant/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sqlx.DB
}

// New creates a new SQLite task repository.
func New(l pkgLog.Logger, db *sqlx.DB) *implRepository {
	return &implRepository{l: l, db: db}
}

const insertTask = `
	INSERT INTO tasks (id, user_id, title, description, date, day, start_time, end_time, task_type, priority, created_at)
	VALUES (:id, :user_id, :title, :description, :date, :day, :start_time, :end_time, :task_type, :priority, :created_at)`

func (r *implRepository) Create(ctx context.Context, t model.Task) error {
	if _, err := r.db.NamedExecContext(ctx, insertTask, t); err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *implRepository) GetByID(ctx context.Context, userID, id string) (model.Task, error) {
	var t model.Task
	err := r.db.GetContext(ctx, &t,
		"SELECT * FROM tasks WHERE user_id = ? AND id = ?", userID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("reading task: %w", err)
	}
	return t, nil
}

func (r *implRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.SelectContext(ctx, &tasks,
		"SELECT * FROM tasks WHERE user_id = ? ORDER BY date, created_at", userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

func (r *implRepository) ListByUserDate(ctx context.Context, userID, date string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.SelectContext(ctx, &tasks,
		"SELECT * FROM tasks WHERE user_id = ? AND date = ? ORDER BY created_at", userID, date)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for %s: %w", date, err)
	}
	return tasks, nil
}

const updateTask = `
	UPDATE tasks
	SET title = :title, description = :description, date = :date, day = :day,
	    start_time = :start_time, end_time = :end_time, task_type = :task_type, priority = :priority
	WHERE user_id = :user_id AND id = :id`

func (r *implRepository) Update(ctx context.Context, t model.Task) error {
	res, err := r.db.NamedExecContext(ctx, updateTask, t)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE user_id = ? AND id = ?", userID, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
