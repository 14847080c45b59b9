package conversation

import (
	"fmt"
	"time"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/pkg/openrouter"
)

// systemPromptTemplate is the other half of the plan parser's contract:
// it tells the model exactly which markup to emit so replies can be
// parsed back into tasks. Change it and the parser together.
const systemPromptTemplate = `You are a friendly study planning assistant inside a student scheduling app.

Today's date is %s (%s).

When the user asks for a study plan, schedule, or timeline, format every task exactly like this:

1. **Task Title**
2006-01-02
09:00 AM - 10:30 AM
Type: Study
Priority: Medium
Description: one short line about the task

Rules:
- Titles go in double asterisks on their own line.
- Dates are YYYY-MM-DD and must not be in the past.
- Times use the 12-hour clock with AM/PM. Deadlines get a single time instead of a range.
- Type is one of Study, Break, Deadline. Priority is one of High, Medium, Low.
- Include short breaks between long study sessions.
- Never schedule tasks that overlap the user's existing commitments listed below.

For anything that is not a planning request, just answer normally and conversationally.

%s`

// BuildSystemPrompt returns the system message for a chat turn. The
// schedule section is the user's current commitments rendered as text;
// pass "" for a user with nothing scheduled.
func BuildSystemPrompt(now time.Time, schedule string) openrouter.Message {
	if schedule == "" {
		schedule = "The user has no existing commitments."
	}
	return openrouter.Message{
		Role: openrouter.RoleSystem,
		Content: fmt.Sprintf(systemPromptTemplate,
			now.Format(model.DateFormatISO), now.Weekday().String(), schedule),
	}
}
