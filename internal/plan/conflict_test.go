package plan

import (
	"testing"

	"study-plan-assistant/internal/model"
)

func studyTask(title, date, start, end string) model.Task {
	return model.Task{
		ID:        "t-" + title,
		UserID:    "u1",
		Title:     title,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		TaskType:  string(model.TaskTypeStudy),
		Priority:  string(model.PriorityMedium),
	}
}

func studyCandidate(title, date, start, end string) Candidate {
	return Candidate{
		Title:     title,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		TaskType:  model.TaskTypeStudy,
		Priority:  model.PriorityMedium,
	}
}

func TestDetectConflictsOverlap(t *testing.T) {
	candidates := []Candidate{
		studyCandidate("New Session", "2025-12-15", "02:00 PM", "03:00 PM"),
	}
	existing := []model.Task{
		studyTask("Existing Session", "2025-12-15", "02:30 PM", "03:30 PM"),
	}

	conflicts := DetectConflicts(candidates, existing)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	c := conflicts[0]
	if c.OverlapMinutes != 30 {
		t.Errorf("overlap = %d minutes, want 30", c.OverlapMinutes)
	}
	if c.CandidateIndex != 0 {
		t.Errorf("candidate index = %d", c.CandidateIndex)
	}
	if c.Existing.Title != "Existing Session" {
		t.Errorf("existing = %q", c.Existing.Title)
	}
}

func TestDetectConflictsBoundaries(t *testing.T) {
	existing := []model.Task{
		studyTask("Existing", "2025-12-15", "02:00 PM", "03:00 PM"),
	}

	cases := []struct {
		name      string
		candidate Candidate
		wantCount int
	}{
		{"back to back after", studyCandidate("After", "2025-12-15", "03:00 PM", "04:00 PM"), 0},
		{"back to back before", studyCandidate("Before", "2025-12-15", "01:00 PM", "02:00 PM"), 0},
		{"fully inside", studyCandidate("Inside", "2025-12-15", "02:15 PM", "02:45 PM"), 1},
		{"fully covering", studyCandidate("Covering", "2025-12-15", "01:00 PM", "04:00 PM"), 1},
		{"different date", studyCandidate("Elsewhere", "2025-12-16", "02:00 PM", "03:00 PM"), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectConflicts([]Candidate{tc.candidate}, existing)
			if len(got) != tc.wantCount {
				t.Errorf("got %d conflicts, want %d", len(got), tc.wantCount)
			}
		})
	}
}

func TestDeadlinesNeverConflict(t *testing.T) {
	dl := Candidate{
		Title:     "Essay Due",
		Date:      "2025-12-15",
		StartTime: "02:30 PM",
		EndTime:   "02:30 PM",
		TaskType:  model.TaskTypeDeadline,
		Priority:  model.PriorityHigh,
	}
	existing := []model.Task{
		studyTask("Existing", "2025-12-15", "02:00 PM", "03:00 PM"),
	}
	if got := DetectConflicts([]Candidate{dl}, existing); len(got) != 0 {
		t.Errorf("deadline candidate should not conflict, got %+v", got)
	}

	existingDL := studyTask("Due", "2025-12-15", "02:30 PM", "02:30 PM")
	existingDL.TaskType = string(model.TaskTypeDeadline)
	candidate := studyCandidate("New", "2025-12-15", "02:00 PM", "03:00 PM")
	if got := DetectConflicts([]Candidate{candidate}, []model.Task{existingDL}); len(got) != 0 {
		t.Errorf("existing deadline should not conflict, got %+v", got)
	}
}

func TestDetectConflictsSkipsUnparseableTimes(t *testing.T) {
	candidates := []Candidate{
		studyCandidate("Bad Times", "2025-12-15", "25:00 PM", "03:00 PM"),
	}
	existing := []model.Task{
		studyTask("Existing", "2025-12-15", "02:00 PM", "03:00 PM"),
	}
	if got := DetectConflicts(candidates, existing); len(got) != 0 {
		t.Errorf("unparseable candidate should be skipped, got %+v", got)
	}
}

func TestResolveByShifting(t *testing.T) {
	existing := studyTask("Existing", "2025-12-15", "02:00 PM", "03:00 PM")

	shift, ok := ResolveByShifting(
		studyCandidate("New", "2025-12-15", "02:30 PM", "03:30 PM"), existing)
	if !ok {
		t.Fatal("expected a shift")
	}
	if shift.StartTime != "03:00 PM" || shift.EndTime != "04:00 PM" {
		t.Errorf("after-shift = %q - %q", shift.StartTime, shift.EndTime)
	}

	// No room after: the existing task runs to end of day.
	lateExisting := studyTask("Late", "2025-12-15", "10:00 PM", "11:59 PM")
	shift, ok = ResolveByShifting(
		studyCandidate("New", "2025-12-15", "10:30 PM", "11:30 PM"), lateExisting)
	if !ok {
		t.Fatal("expected a before-shift")
	}
	if shift.StartTime != "09:00 PM" || shift.EndTime != "10:00 PM" {
		t.Errorf("before-shift = %q - %q", shift.StartTime, shift.EndTime)
	}
}

func TestResolveByShiftingZeroDuration(t *testing.T) {
	existing := studyTask("Existing", "2025-12-15", "02:00 PM", "03:00 PM")
	_, ok := ResolveByShifting(
		studyCandidate("Point", "2025-12-15", "02:30 PM", "02:30 PM"), existing)
	if ok {
		t.Error("zero-duration candidate should not be shiftable")
	}
}
