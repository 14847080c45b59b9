package usecase

import (
	"time"

	"study-plan-assistant/internal/task/repository"
	"study-plan-assistant/pkg/gcalendar"
	pkgLog "study-plan-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	calendar *gcalendar.Client
	timezone string
	now      func() time.Time
}

// New creates a new task UseCase instance. The calendar client may be nil
// when Google Calendar export is not configured.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	calendar *gcalendar.Client,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		timezone: timezone,
		now:      time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
