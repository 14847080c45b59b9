package usecase

import (
	"context"
	"errors"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// In-memory task repository for testing
type memRepo struct {
	tasks      []model.Task
	createFail bool
}

func (m *memRepo) Create(ctx context.Context, t model.Task) error {
	if m.createFail {
		return errors.New("db error")
	}
	m.tasks = append(m.tasks, t)
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, userID, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.UserID == userID && t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *memRepo) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) ListByUserDate(ctx context.Context, userID, date string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID && t.Date == date {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, updated model.Task) error {
	for i, t := range m.tasks {
		if t.UserID == updated.UserID && t.ID == updated.ID {
			m.tasks[i] = updated
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memRepo) Delete(ctx context.Context, userID, id string) error {
	for i, t := range m.tasks {
		if t.UserID == userID && t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
