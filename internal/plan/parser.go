// Package plan turns free-form assistant replies into structured task
// candidates and checks them against the user's calendar.
//
// The parser's line grammar is the service's half of the contract with the
// model: the system prompt instructs the model to emit bold titles, ISO
// dates, 12-hour time ranges, and explicit Type:/Priority: lines, and this
// scanner accepts exactly that markup. Treat the patterns below as a
// versioned contract, not incidental string munging.
package plan

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/pkg/clocktime"
)

var (
	titlePattern      = regexp.MustCompile(`^[\d.]*\s*\*\*([^*]+)\*\*`)
	datePattern       = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	timeRangePattern  = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM))\s*-\s*(\d{1,2}:\d{2}\s*(?:AM|PM))`)
	singleTimePattern = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM))`)
	typePattern       = regexp.MustCompile(`(?i)^Type:\s*(Study|Break|Deadline)$`)
	priorityPattern   = regexp.MustCompile(`(?i)^Priority:\s*(High|Medium|Low)$`)
	descLabelPattern  = regexp.MustCompile(`(?i)^(?:Coverage|Description):\s*(.+)$`)
	metaLinePattern   = regexp.MustCompile(`(?i)^(?:Type|Priority|Deadline):`)
)

// planKeywords is the cheap pre-check vocabulary for "does this reply
// contain a plan at all".
var planKeywords = []string{"study plan", "schedule", "timeline", "time slot", "break", "deadline"}

// LooksLikePlan reports whether an assistant reply is worth running through
// the full parser: it must mention at least one plan keyword and contain a
// date or a 12-hour time token.
func LooksLikePlan(text string) bool {
	lower := strings.ToLower(text)

	hasKeyword := false
	for _, kw := range planKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}
	if !hasKeyword {
		return false
	}

	return datePattern.MatchString(text) || singleTimePattern.MatchString(text)
}

// Parse scans one assistant reply line by line and returns the task
// candidates it describes, in order of appearance. Candidates missing a
// title or date, and candidates dated before today (local calendar day),
// are dropped. Malformed individual lines never fail the parse; they end
// up in the description or are ignored.
func Parse(text string, today time.Time) []Candidate {
	var tasks []Candidate
	var current *Candidate

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		titleMatch := titlePattern.FindStringSubmatch(trimmed)
		if titleMatch != nil {
			if current != nil && current.Title != "" {
				finalize(current)
				tasks = append(tasks, *current)
			}
			current = newCandidate(strings.TrimSpace(titleMatch[1]))
		}

		if current == nil {
			continue
		}

		if m := typePattern.FindStringSubmatch(trimmed); m != nil {
			current.TaskType = model.TaskType(capitalize(m[1]))
		}

		if m := datePattern.FindStringSubmatch(trimmed); m != nil {
			current.Date = m[1]
			if day, err := model.DayFromDate(m[1]); err == nil {
				current.Day = day
			}
		}

		if m := timeRangePattern.FindStringSubmatch(trimmed); m != nil {
			current.StartTime = clocktime.Normalize(m[1])
			current.EndTime = clocktime.Normalize(m[2])
		} else if m := singleTimePattern.FindStringSubmatch(trimmed); m != nil && current.EndTime == "" {
			current.EndTime = clocktime.Normalize(m[1])
			if current.TaskType == model.TaskTypeDeadline {
				current.StartTime = current.EndTime
			}
		}

		if m := priorityPattern.FindStringSubmatch(trimmed); m != nil {
			current.Priority = model.Priority(capitalize(m[1]))
		}

		// Anything that is not a title/date/time/meta line is description.
		hasTime := singleTimePattern.MatchString(trimmed)
		hasDate := datePattern.MatchString(trimmed)
		if titleMatch == nil && !hasDate && !hasTime && !metaLinePattern.MatchString(trimmed) {
			descText := trimmed
			if m := descLabelPattern.FindStringSubmatch(trimmed); m != nil {
				descText = m[1]
			}
			if current.Description != "" {
				current.Description += " " + descText
			} else {
				current.Description = descText
			}
		}
	}

	if current != nil && current.Title != "" {
		finalize(current)
		tasks = append(tasks, *current)
	}

	return filterValid(tasks, today)
}

func newCandidate(title string) *Candidate {
	c := &Candidate{
		Title:    title,
		TaskType: model.TaskTypeStudy,
		Priority: model.PriorityMedium,
	}

	// Type inferred from the title; an explicit Type: line overrides it.
	lower := strings.ToLower(title)
	if strings.Contains(lower, "break") {
		c.TaskType = model.TaskTypeBreak
		c.Priority = model.PriorityLow
	} else if strings.Contains(lower, "deadline") || strings.Contains(lower, "due") {
		c.TaskType = model.TaskTypeDeadline
		c.Priority = model.PriorityHigh
	}

	return c
}

// finalize mirrors a deadline's lone end time onto its start regardless of
// the order the Type: and time lines appeared in.
func finalize(c *Candidate) {
	if c.TaskType == model.TaskTypeDeadline && c.StartTime == "" && c.EndTime != "" {
		c.StartTime = c.EndTime
	}
}

func filterValid(tasks []Candidate, today time.Time) []Candidate {
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	valid := make([]Candidate, 0, len(tasks))
	for _, t := range tasks {
		if t.Title == "" || t.Date == "" {
			continue
		}
		taskDate, err := time.ParseInLocation(model.DateFormatISO, t.Date, today.Location())
		if err != nil || taskDate.Before(dayStart) {
			continue
		}
		valid = append(valid, t)
	}
	return valid
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// FormatConfirmation renders the proposed plan as the yes/no prompt shown
// to the user in the conversation.
func FormatConfirmation(tasks []Candidate) string {
	if len(tasks) == 0 {
		return "No tasks in the plan"
	}

	var sb strings.Builder
	sb.WriteString("Here's your proposed study plan:\n\n")

	for i, t := range tasks {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, t.Title))
		if t.Description != "" {
			sb.WriteString(fmt.Sprintf("   Description: %s\n", t.Description))
		}
		sb.WriteString(fmt.Sprintf("   Date: %s (%s)\n", t.Date, t.Day))
		if t.TaskType == model.TaskTypeDeadline {
			sb.WriteString(fmt.Sprintf("   Deadline: %s\n", t.EndTime))
		} else {
			sb.WriteString(fmt.Sprintf("   Time: %s - %s\n", t.StartTime, t.EndTime))
		}
		sb.WriteString(fmt.Sprintf("   Type: %s\n", t.TaskType))
		if t.Priority != "" {
			sb.WriteString(fmt.Sprintf("   Priority: %s\n", t.Priority))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Would you like to approve and add this plan to your calendar?")
	return sb.String()
}
