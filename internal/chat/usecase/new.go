package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"study-plan-assistant/internal/conversation"
	"study-plan-assistant/internal/plan"
	"study-plan-assistant/internal/schedule"
	"study-plan-assistant/internal/task"
	taskRepo "study-plan-assistant/internal/task/repository"
	pkgLog "study-plan-assistant/pkg/log"
	"study-plan-assistant/pkg/openrouter"
)

// Pending plans wait in memory for the user's yes/no. A plan the user
// never answers expires and has to be proposed again.
const (
	pendingPlanCap = 1000
	pendingPlanTTL = 30 * time.Minute
)

// llmClient is the slice of the OpenRouter client this use case needs.
type llmClient interface {
	ChatCompletion(ctx context.Context, messages []openrouter.Message) (string, error)
}

type implUseCase struct {
	l      pkgLog.Logger
	llm    llmClient
	conv   *conversation.Store
	sched  *schedule.Manager
	taskUC task.UseCase
	repo   taskRepo.TaskRepository

	exportToCalendar bool

	pending *expirable.LRU[string, []plan.Candidate]

	// busy is the per-user single-turn gate: a user's second message is
	// rejected while their first is still with the model.
	mu   sync.Mutex
	busy map[string]struct{}

	now func() time.Time
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmClient,
	conv *conversation.Store,
	sched *schedule.Manager,
	taskUC task.UseCase,
	repo taskRepo.TaskRepository,
	exportToCalendar bool,
) *implUseCase {
	return &implUseCase{
		l:                l,
		llm:              llm,
		conv:             conv,
		sched:            sched,
		taskUC:           taskUC,
		repo:             repo,
		exportToCalendar: exportToCalendar,
		pending:          expirable.NewLRU[string, []plan.Candidate](pendingPlanCap, nil, pendingPlanTTL),
		busy:             make(map[string]struct{}),
		now:              time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

func (uc *implUseCase) acquire(userID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.busy[userID]; ok {
		return false
	}
	uc.busy[userID] = struct{}{}
	return true
}

func (uc *implUseCase) release(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.busy, userID)
}
