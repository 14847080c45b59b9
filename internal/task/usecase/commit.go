package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/plan"
	"study-plan-assistant/internal/task"
	"study-plan-assistant/pkg/clocktime"
	"study-plan-assistant/pkg/gcalendar"
)

// Default slot for candidates the model proposed without times.
const (
	defaultStartTime = "09:00 AM"
	defaultEndTime   = "10:00 AM"
)

// Commit stores each approved candidate as a task. Candidates get defaults
// filled in here, not at parse time, so the user approves exactly what the
// model proposed. Calendar export failures are logged and skipped.
func (uc *implUseCase) Commit(ctx context.Context, sc model.Scope, input task.CommitInput) (task.CommitOutput, error) {
	if len(input.Candidates) == 0 {
		return task.CommitOutput{}, task.ErrNoCandidates
	}

	uc.l.Infof(ctx, "Commit: user=%s candidates=%d export=%v", sc.UserID, len(input.Candidates), input.ExportToCalendar)

	committed := make([]task.CommittedTask, 0, len(input.Candidates))
	for _, c := range input.Candidates {
		t, err := uc.candidateToTask(sc.UserID, c)
		if err != nil {
			return task.CommitOutput{}, fmt.Errorf("candidate %q: %w", c.Title, err)
		}

		if err := uc.repo.Create(ctx, t); err != nil {
			uc.l.Errorf(ctx, "Commit: failed to store task %q: %v", t.Title, err)
			return task.CommitOutput{}, err
		}

		var link string
		if input.ExportToCalendar {
			link = uc.tryCreateCalendarEvent(ctx, t)
		}

		committed = append(committed, task.CommittedTask{Task: t, CalendarLink: link})
	}

	return task.CommitOutput{Tasks: committed, Count: len(committed)}, nil
}

// candidateToTask fills defaults, validates, and assigns identity.
func (uc *implUseCase) candidateToTask(userID string, c plan.Candidate) (model.Task, error) {
	day, err := model.DayFromDate(c.Date)
	if err != nil {
		return model.Task{}, task.ErrInvalidDate
	}

	start, end := c.StartTime, c.EndTime
	if start == "" && end == "" {
		start, end = defaultStartTime, defaultEndTime
	}
	if c.TaskType == model.TaskTypeDeadline && start == "" {
		start = end
	}
	if _, err := clocktime.ToMinutes(start); err != nil {
		return model.Task{}, task.ErrInvalidTime
	}
	if _, err := clocktime.ToMinutes(end); err != nil {
		return model.Task{}, task.ErrInvalidTime
	}

	taskType := c.TaskType
	if taskType == "" {
		taskType = model.TaskTypeStudy
	}
	if !model.ValidTaskType(string(taskType)) {
		return model.Task{}, task.ErrInvalidType
	}

	priority := c.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(string(priority)) {
		return model.Task{}, task.ErrInvalidPriority
	}

	return model.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       c.Title,
		Description: c.Description,
		Date:        c.Date,
		Day:         day,
		StartTime:   start,
		EndTime:     end,
		TaskType:    string(taskType),
		Priority:    string(priority),
		CreatedAt:   uc.now().UTC().Format(time.RFC3339),
	}, nil
}

// tryCreateCalendarEvent attempts to create a Google Calendar event.
// Returns the event HTML link, or empty string on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	startTime, endTime, err := uc.eventTimes(t)
	if err != nil {
		uc.l.Warnf(ctx, "Commit: cannot build event times for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Commit: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}

// eventTimes converts the task's date and clock strings into absolute
// times in the configured timezone.
func (uc *implUseCase) eventTimes(t model.Task) (time.Time, time.Time, error) {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}

	day, err := time.ParseInLocation(model.DateFormatISO, t.Date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startMin, err := clocktime.ToMinutes(t.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := clocktime.ToMinutes(t.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if endMin <= startMin {
		endMin = startMin + 60
	}

	return day.Add(time.Duration(startMin) * time.Minute),
		day.Add(time.Duration(endMin) * time.Minute), nil
}
