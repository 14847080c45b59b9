package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"study-plan-assistant/internal/chat"
	"study-plan-assistant/internal/conversation"
	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/plan"
	"study-plan-assistant/internal/task"
	"study-plan-assistant/pkg/openrouter"
)

// ProcessMessage runs one conversation turn.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (chat.ProcessMessageOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return chat.ProcessMessageOutput{}, chat.ErrEmptyMessage
	}

	if !uc.acquire(sc.UserID) {
		return chat.ProcessMessageOutput{}, chat.ErrTurnInProgress
	}
	defer uc.release(sc.UserID)

	// A pending plan turns this message into a yes/no answer first.
	// Rejection is checked before approval: "no, change it" must not
	// read as consent.
	if pending, ok := uc.pending.Get(sc.UserID); ok {
		switch classifyIntent(msg) {
		case intentReject:
			uc.pending.Remove(sc.UserID)
			uc.l.Infof(ctx, "ProcessMessage: user=%s rejected pending plan", sc.UserID)
			// The message goes to the model so it can revise the plan.
		case intentApprove:
			return uc.approveFromChat(ctx, sc, msg, pending)
		}
	}

	return uc.converse(ctx, sc, msg)
}

// converse forwards the message to the model and extracts a plan from
// the reply if it contains one.
func (uc *implUseCase) converse(ctx context.Context, sc model.Scope, msg string) (chat.ProcessMessageOutput, error) {
	history, err := uc.conv.Messages(ctx, sc.UserID)
	if err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	existing, err := uc.repo.ListByUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "ProcessMessage: listing tasks: %v", err)
		return chat.ProcessMessageOutput{}, err
	}

	snapshot, err := uc.sched.Snapshot(ctx, sc.UserID, existing, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "ProcessMessage: schedule snapshot failed (non-fatal): %v", err)
		snapshot = ""
	}

	if err := uc.conv.AddUser(ctx, sc.UserID, msg); err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	messages := make([]openrouter.Message, 0, len(history)+2)
	messages = append(messages, conversation.BuildSystemPrompt(uc.now(), snapshot))
	messages = append(messages, history...)
	messages = append(messages, openrouter.Message{Role: openrouter.RoleUser, Content: msg})

	reply, err := uc.llm.ChatCompletion(ctx, messages)
	if err != nil {
		// Roll back the user message so the transcript never carries an
		// unanswered turn.
		if rbErr := uc.conv.RemoveLast(ctx, sc.UserID); rbErr != nil {
			uc.l.Errorf(ctx, "ProcessMessage: rollback failed: %v", rbErr)
		}
		uc.l.Errorf(ctx, "ProcessMessage: model call failed: %v", err)
		return chat.ProcessMessageOutput{}, fmt.Errorf("%w: %v", chat.ErrAssistantUnavailable, err)
	}

	if err := uc.conv.AddAssistant(ctx, sc.UserID, reply); err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	out := chat.ProcessMessageOutput{Reply: reply}

	if plan.LooksLikePlan(reply) {
		candidates := plan.Parse(reply, uc.now())
		if len(candidates) > 0 {
			out.PendingPlan = candidates
			out.Confirmation = plan.FormatConfirmation(candidates)
			out.Conflicts = plan.DetectConflicts(candidates, existing)
			out.Advice = plan.Review(candidates, existing)
			uc.pending.Add(sc.UserID, candidates)
			uc.l.Infof(ctx, "ProcessMessage: user=%s plan proposed with %d tasks, %d conflicts",
				sc.UserID, len(candidates), len(out.Conflicts))
		}
	}

	return out, nil
}

// approveFromChat commits the pending plan in response to a "yes" in the
// conversation. A plan that has grown conflicts since it was proposed is
// not committed; the user is asked to revise instead.
func (uc *implUseCase) approveFromChat(ctx context.Context, sc model.Scope, msg string, pending []plan.Candidate) (chat.ProcessMessageOutput, error) {
	existing, err := uc.repo.ListByUser(ctx, sc.UserID)
	if err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	if conflicts := plan.DetectConflicts(pending, existing); len(conflicts) > 0 {
		reply := plan.FormatConflicts(conflicts)
		if err := uc.recordExchange(ctx, sc.UserID, msg, reply); err != nil {
			return chat.ProcessMessageOutput{}, err
		}
		return chat.ProcessMessageOutput{
			Reply:       reply,
			PendingPlan: pending,
			Conflicts:   conflicts,
		}, nil
	}

	out, err := uc.taskUC.Commit(ctx, sc, task.CommitInput{
		Candidates:       pending,
		ExportToCalendar: uc.exportToCalendar,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ProcessMessage: commit failed: %v", err)
		return chat.ProcessMessageOutput{}, err
	}

	uc.pending.Remove(sc.UserID)

	summary := commitSummary(out.Tasks)
	if err := uc.recordExchange(ctx, sc.UserID, msg, summary); err != nil {
		return chat.ProcessMessageOutput{}, err
	}

	uc.l.Infof(ctx, "ProcessMessage: user=%s approved plan, %d tasks committed", sc.UserID, out.Count)

	return chat.ProcessMessageOutput{
		Reply:     summary,
		Committed: out.Tasks,
	}, nil
}

func (uc *implUseCase) recordExchange(ctx context.Context, userID, userMsg, reply string) error {
	if err := uc.conv.AddUser(ctx, userID, userMsg); err != nil {
		return err
	}
	return uc.conv.AddAssistant(ctx, userID, reply)
}

// commitSummary renders the assistant's closing message after a commit.
func commitSummary(tasks []task.CommittedTask) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Great, I've added %d task(s) to your schedule:\n", len(tasks)))
	for _, t := range tasks {
		sb.WriteString(fmt.Sprintf("- %s on %s (%s)", t.Task.Title, t.Task.Date, t.Task.Day))
		if t.CalendarLink != "" {
			sb.WriteString(" — exported to Google Calendar")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Good luck with your studies!")
	return sb.String()
}

type intent int

const (
	intentNone intent = iota
	intentApprove
	intentReject
)

var (
	rejectKeywords  = []string{"no", "reject", "modify", "change", "different"}
	approveKeywords = []string{"yes", "approve", "add it", "looks good", "perfect", "ok", "confirm"}
)

// classifyIntent reads a reply to a pending plan. Single-word keywords
// match on word boundaries so "no" does not fire inside "know".
func classifyIntent(msg string) intent {
	lower := strings.ToLower(msg)
	for _, kw := range rejectKeywords {
		if containsKeyword(lower, kw) {
			return intentReject
		}
	}
	for _, kw := range approveKeywords {
		if containsKeyword(lower, kw) {
			return intentApprove
		}
	}
	return intentNone
}

func containsKeyword(lower, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(lower, kw)
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range words {
		if w == kw {
			return true
		}
	}
	return false
}
