package plan

import (
	"fmt"
	"sort"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/pkg/clocktime"
)

// Study-load thresholds, in minutes per day.
const (
	heavyStudyMinutes    = 480
	elevatedStudyMinutes = 360
	longSessionMinutes   = 120
	crowdedDayTaskCount  = 3
)

// Review runs non-blocking heuristics over a candidate plan, taking the
// user's already committed tasks into account. Advice never prevents a
// plan from being approved; it is surfaced alongside the confirmation.
func Review(candidates []Candidate, existing []model.Task) []Advice {
	var advice []Advice

	studyPerDay := map[string]int{}
	breakPerDay := map[string]int{}
	tasksPerDay := map[string]int{}

	for _, t := range existing {
		tasksPerDay[t.Date]++
		d := durationMinutes(t.StartTime, t.EndTime)
		switch t.TaskType {
		case string(model.TaskTypeStudy):
			studyPerDay[t.Date] += d
		case string(model.TaskTypeBreak):
			breakPerDay[t.Date] += d
		}
	}

	for _, c := range candidates {
		tasksPerDay[c.Date]++
		d := durationMinutes(c.StartTime, c.EndTime)
		switch c.TaskType {
		case model.TaskTypeStudy:
			studyPerDay[c.Date] += d
			if d > longSessionMinutes {
				advice = append(advice, Advice{
					Level: AdviceInfo,
					Message: fmt.Sprintf("%q on %s runs %d minutes straight; consider splitting it with a break",
						c.Title, c.Date, d),
				})
			}
		case model.TaskTypeBreak:
			breakPerDay[c.Date] += d
		}
	}

	for _, date := range sortedDates(studyPerDay) {
		total := studyPerDay[date]
		switch {
		case total > heavyStudyMinutes:
			advice = append(advice, Advice{
				Level:   AdviceWarning,
				Message: fmt.Sprintf("%s has %d minutes of study scheduled; that pace is hard to sustain", date, total),
			})
		case total > elevatedStudyMinutes:
			advice = append(advice, Advice{
				Level:   AdviceInfo,
				Message: fmt.Sprintf("%s has %d minutes of study scheduled; make sure to pace yourself", date, total),
			})
		}
		if total > 0 && breakPerDay[date] == 0 {
			advice = append(advice, Advice{
				Level:   AdviceInfo,
				Message: fmt.Sprintf("%s has study sessions but no breaks planned", date),
			})
		}
	}

	for _, date := range sortedDates(tasksPerDay) {
		if tasksPerDay[date] > crowdedDayTaskCount {
			advice = append(advice, Advice{
				Level:   AdviceWarning,
				Message: fmt.Sprintf("%s has %d tasks scheduled; consider spreading them out", date, tasksPerDay[date]),
			})
		}
	}

	for _, c := range candidates {
		if c.TaskType != model.TaskTypeDeadline {
			continue
		}
		if !hasStudyBefore(c.Date, candidates, existing) {
			advice = append(advice, Advice{
				Level:   AdviceWarning,
				Message: fmt.Sprintf("deadline %q on %s has no study time scheduled before it", c.Title, c.Date),
			})
		}
	}

	return advice
}

// hasStudyBefore reports whether any study session, candidate or
// committed, lands on or before the deadline's date. ISO dates compare
// correctly as strings.
func hasStudyBefore(deadline string, candidates []Candidate, existing []model.Task) bool {
	for _, c := range candidates {
		if c.TaskType == model.TaskTypeStudy && c.Date <= deadline {
			return true
		}
	}
	for _, t := range existing {
		if t.TaskType == string(model.TaskTypeStudy) && t.Date <= deadline {
			return true
		}
	}
	return false
}

func durationMinutes(start, end string) int {
	s, err := clocktime.ToMinutes(start)
	if err != nil {
		return 0
	}
	e, err := clocktime.ToMinutes(end)
	if err != nil {
		return 0
	}
	if e <= s {
		return 0
	}
	return e - s
}

func sortedDates(m map[string]int) []string {
	dates := make([]string, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// FormatAdvice renders review notes for inclusion in the confirmation
// message. Returns "" when there is nothing to say.
func FormatAdvice(advice []Advice) string {
	if len(advice) == 0 {
		return ""
	}

	out := "A few notes on this plan:\n"
	for _, a := range advice {
		out += fmt.Sprintf("- %s\n", a.Message)
	}
	return out
}
