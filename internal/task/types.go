package task

import (
	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/plan"
)

// CommitInput is the input for committing an approved plan.
// UserID comes from model.Scope, not here.
type CommitInput struct {
	Candidates []plan.Candidate

	// ExportToCalendar also creates a Google Calendar event per task when
	// a calendar client is configured. Failures there never fail the commit.
	ExportToCalendar bool
}

// CommittedTask is one stored task plus its optional calendar link.
type CommittedTask struct {
	Task         model.Task `json:"task"`
	CalendarLink string     `json:"calendar_link,omitempty"`
}

// CommitOutput is the result of committing a plan.
type CommitOutput struct {
	Tasks []CommittedTask
	Count int
}

// ListInput filters the task listing.
type ListInput struct {
	Date string // optional, ISO date
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// CheckConflictInput describes a time window to test against the user's
// schedule. ExcludeID skips the task being edited.
type CheckConflictInput struct {
	Date      string
	StartTime string
	EndTime   string
	ExcludeID string
}

// UpdateInput is a partial update; empty fields are left unchanged.
type UpdateInput struct {
	ID          string
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	TaskType    string
	Priority    string
}
