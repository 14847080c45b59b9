package usecase

import (
	"context"
	"errors"
	"time"

	"study-plan-assistant/internal/conversation"
	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/schedule"
	"study-plan-assistant/internal/storage"
	taskRepo "study-plan-assistant/internal/task/repository"
	taskUC "study-plan-assistant/internal/task/usecase"
	"study-plan-assistant/pkg/openrouter"
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

// In-memory user data store
type memKV struct {
	values map[string]string
}

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, userID, key string) (string, error) {
	v, ok := m.values[userID+"/"+key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, userID, key, value string) error {
	m.values[userID+"/"+key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, userID, key string) error {
	delete(m.values, userID+"/"+key)
	return nil
}

// In-memory task repository
type memTaskRepo struct {
	tasks []model.Task
}

func (m *memTaskRepo) Create(ctx context.Context, t model.Task) error {
	m.tasks = append(m.tasks, t)
	return nil
}

func (m *memTaskRepo) GetByID(ctx context.Context, userID, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.UserID == userID && t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, taskRepo.ErrNotFound
}

func (m *memTaskRepo) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTaskRepo) ListByUserDate(ctx context.Context, userID, date string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID && t.Date == date {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTaskRepo) Update(ctx context.Context, updated model.Task) error {
	for i, t := range m.tasks {
		if t.UserID == updated.UserID && t.ID == updated.ID {
			m.tasks[i] = updated
			return nil
		}
	}
	return taskRepo.ErrNotFound
}

func (m *memTaskRepo) Delete(ctx context.Context, userID, id string) error {
	for i, t := range m.tasks {
		if t.UserID == userID && t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return taskRepo.ErrNotFound
}

// Scripted model client: returns replies in order, then fails.
type scriptedLLM struct {
	replies []string
	err     error
	calls   [][]openrouter.Message
}

func (s *scriptedLLM) ChatCompletion(ctx context.Context, messages []openrouter.Message) (string, error) {
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", errors.New("script exhausted")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

var (
	testNow   = time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	testScope = model.Scope{UserID: "u1", Username: "tester"}
)

type fixture struct {
	uc   *implUseCase
	llm  *scriptedLLM
	repo *memTaskRepo
	conv *conversation.Store
}

func newFixture(llm *scriptedLLM, repo *memTaskRepo) *fixture {
	l := &mockLogger{}
	kv := newMemKV()
	conv := conversation.NewStore(kv)
	sched := schedule.NewManager(kv)

	tasks := taskUC.New(l, repo, nil, "UTC")
	tasks.SetClock(func() time.Time { return testNow })

	uc := New(l, llm, conv, sched, tasks, repo, false)
	uc.SetClock(func() time.Time { return testNow })

	return &fixture{uc: uc, llm: llm, repo: repo, conv: conv}
}
