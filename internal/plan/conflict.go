package plan

import (
	"fmt"
	"strings"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/pkg/clocktime"
)

// DetectConflicts compares each candidate against the user's committed
// tasks and returns one Conflict per overlapping pair. Deadlines are
// point-in-time markers and never conflict, on either side. Tasks on
// different dates never conflict.
func DetectConflicts(candidates []Candidate, existing []model.Task) []Conflict {
	var conflicts []Conflict

	for i, c := range candidates {
		if c.TaskType == model.TaskTypeDeadline {
			continue
		}

		newStart, err := clocktime.ToMinutes(c.StartTime)
		if err != nil {
			continue
		}
		newEnd, err := clocktime.ToMinutes(c.EndTime)
		if err != nil {
			continue
		}
		if newStart == newEnd {
			continue
		}

		for _, t := range existing {
			if t.TaskType == string(model.TaskTypeDeadline) {
				continue
			}
			if t.Date != c.Date {
				continue
			}

			existingStart, err := clocktime.ToMinutes(t.StartTime)
			if err != nil {
				continue
			}
			existingEnd, err := clocktime.ToMinutes(t.EndTime)
			if err != nil {
				continue
			}
			if existingStart == existingEnd {
				continue
			}

			if newEnd <= existingStart || newStart >= existingEnd {
				continue
			}

			overlap := min(newEnd, existingEnd) - max(newStart, existingStart)
			conflicts = append(conflicts, Conflict{
				CandidateIndex: i,
				Candidate:      c,
				Existing:       t,
				OverlapMinutes: overlap,
			})
		}
	}

	return conflicts
}

// ResolveByShifting proposes a same-day slot for a conflicting candidate:
// first right after the existing task, then right before it, preserving
// the candidate's duration. Returns false when neither direction fits
// within the day.
func ResolveByShifting(c Candidate, existing model.Task) (Shift, bool) {
	newStart, err := clocktime.ToMinutes(c.StartTime)
	if err != nil {
		return Shift{}, false
	}
	newEnd, err := clocktime.ToMinutes(c.EndTime)
	if err != nil {
		return Shift{}, false
	}
	duration := newEnd - newStart
	if duration <= 0 {
		return Shift{}, false
	}

	existingStart, err := clocktime.ToMinutes(existing.StartTime)
	if err != nil {
		return Shift{}, false
	}
	existingEnd, err := clocktime.ToMinutes(existing.EndTime)
	if err != nil {
		return Shift{}, false
	}

	if existingEnd+duration <= clocktime.MinutesPerDay {
		return Shift{
			StartTime: clocktime.FromMinutes(existingEnd),
			EndTime:   clocktime.FromMinutes(existingEnd + duration),
			Note:      fmt.Sprintf("moved after %q", existing.Title),
		}, true
	}

	if existingStart-duration >= 0 {
		return Shift{
			StartTime: clocktime.FromMinutes(existingStart - duration),
			EndTime:   clocktime.FromMinutes(existingStart),
			Note:      fmt.Sprintf("moved before %q", existing.Title),
		}, true
	}

	return Shift{}, false
}

// FormatConflicts renders detected conflicts as the message asking the
// user to modify the plan.
func FormatConflicts(conflicts []Conflict) string {
	if len(conflicts) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("The proposed plan conflicts with your existing schedule:\n\n")
	for _, c := range conflicts {
		sb.WriteString(fmt.Sprintf("- %s (%s %s - %s) overlaps %q (%s - %s) by %d minutes\n",
			c.Candidate.Title, c.Candidate.Date, c.Candidate.StartTime, c.Candidate.EndTime,
			c.Existing.Title, c.Existing.StartTime, c.Existing.EndTime, c.OverlapMinutes))
	}
	sb.WriteString("\nWould you like me to adjust the times?")
	return sb.String()
}
