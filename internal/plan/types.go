package plan

import "study-plan-assistant/internal/model"

// Candidate is a parsed, not-yet-committed task extracted from an
// assistant reply. Candidates carry no identity until they are approved
// and committed.
type Candidate struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Date        string         `json:"date"`
	Day         string         `json:"day"`
	StartTime   string         `json:"start_time,omitempty"`
	EndTime     string         `json:"end_time,omitempty"`
	TaskType    model.TaskType `json:"task_type"`
	Priority    model.Priority `json:"priority"`
}

// Conflict records a time overlap between a candidate and an existing
// committed task on the same date.
type Conflict struct {
	CandidateIndex int        `json:"candidate_index"`
	Candidate      Candidate  `json:"candidate"`
	Existing       model.Task `json:"existing"`
	OverlapMinutes int        `json:"overlap_minutes"`
}

// Shift is a proposed adjusted slot that moves a candidate out of a
// conflicting task's way within the same day.
type Shift struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note"`
}

// Advice levels.
const (
	AdviceInfo    = "info"
	AdviceWarning = "warning"
)

// Advice is a non-blocking heuristic note about a candidate plan.
type Advice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
