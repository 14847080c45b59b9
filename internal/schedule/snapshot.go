package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study-plan-assistant/internal/model"
)

// upcomingTaskWindow bounds how many committed tasks the snapshot lists.
const upcomingTaskWindow = 20

// Snapshot renders everything the model should know about the user's
// existing commitments: weekly classes grouped by day starting from
// today, free-time windows, study preferences, and upcoming committed
// tasks. Returns "" when the user has nothing on record.
func (m *Manager) Snapshot(ctx context.Context, userID string, tasks []model.Task, now time.Time) (string, error) {
	classes, err := m.Classes(ctx, userID)
	if err != nil {
		return "", err
	}
	slots, err := m.FreeTime(ctx, userID)
	if err != nil {
		return "", err
	}
	prefs, err := m.StudyPreferences(ctx, userID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	if len(classes) > 0 {
		sb.WriteString("Weekly classes:\n")
		for _, day := range weekdayOrder(now) {
			for _, c := range classes {
				if c.Day != day {
					continue
				}
				sb.WriteString(fmt.Sprintf("- %s: %s, %s - %s", day, c.Name, c.StartTime, c.EndTime))
				if c.Location != "" {
					sb.WriteString(" at " + c.Location)
				}
				sb.WriteString("\n")
			}
		}
	}

	if len(slots) > 0 {
		sb.WriteString("Free for studying:\n")
		for _, day := range weekdayOrder(now) {
			for _, s := range slots {
				if s.Day != day {
					continue
				}
				sb.WriteString(fmt.Sprintf("- %s: %s - %s\n", day, s.StartTime, s.EndTime))
			}
		}
	}

	if p := formatPreferences(prefs); p != "" {
		sb.WriteString(p)
	}

	if upcoming := upcomingTasks(tasks, now); len(upcoming) > 0 {
		sb.WriteString("Already scheduled:\n")
		for _, t := range upcoming {
			if t.TaskType == string(model.TaskTypeDeadline) {
				sb.WriteString(fmt.Sprintf("- %s (%s): %s due %s\n", t.Date, t.Day, t.Title, t.EndTime))
			} else {
				sb.WriteString(fmt.Sprintf("- %s (%s): %s, %s - %s\n", t.Date, t.Day, t.Title, t.StartTime, t.EndTime))
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

func formatPreferences(p Preferences) string {
	var parts []string
	if p.SessionMinutes > 0 {
		parts = append(parts, fmt.Sprintf("prefers %d-minute study sessions", p.SessionMinutes))
	}
	if p.TimeOfDay != "" {
		parts = append(parts, "prefers studying in the "+p.TimeOfDay)
	}
	if p.Notes != "" {
		parts = append(parts, p.Notes)
	}
	if len(parts) == 0 {
		return ""
	}
	return "Preferences: " + strings.Join(parts, "; ") + "\n"
}

// upcomingTasks keeps tasks dated today or later, assuming the caller
// supplies them sorted by date, and caps the list.
func upcomingTasks(tasks []model.Task, now time.Time) []model.Task {
	today := now.Format(model.DateFormatISO)

	var out []model.Task
	for _, t := range tasks {
		if t.Date < today {
			continue
		}
		out = append(out, t)
		if len(out) == upcomingTaskWindow {
			break
		}
	}
	return out
}
