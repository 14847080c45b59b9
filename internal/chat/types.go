package chat

import (
	"study-plan-assistant/internal/plan"
	"study-plan-assistant/internal/task"
)

// ProcessMessageInput is one user message.
type ProcessMessageInput struct {
	Message string
}

// ProcessMessageOutput is the result of one conversation turn.
type ProcessMessageOutput struct {
	// Reply is the assistant text to show the user.
	Reply string

	// PendingPlan holds the parsed candidates when the reply proposed a
	// plan that now awaits approval.
	PendingPlan []plan.Candidate

	// Confirmation is the rendered yes/no prompt for PendingPlan.
	Confirmation string

	// Conflicts are overlaps between PendingPlan and the user's
	// committed tasks.
	Conflicts []plan.Conflict

	// Advice carries non-blocking review notes about PendingPlan.
	Advice []plan.Advice

	// Committed is set when this turn approved a pending plan.
	Committed []task.CommittedTask
}

// ApprovePlanInput selects what to commit from the pending plan.
type ApprovePlanInput struct {
	// Indexes picks candidates by position (0-based). Empty means all.
	Indexes []int

	// Force commits even when conflicts remain.
	Force bool

	ExportToCalendar bool
}

// ApprovePlanOutput is the result of committing a pending plan.
type ApprovePlanOutput struct {
	Tasks   []task.CommittedTask
	Message string
}
