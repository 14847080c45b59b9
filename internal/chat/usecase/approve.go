package usecase

import (
	"context"
	"fmt"

	"study-plan-assistant/internal/chat"
	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/plan"
	"study-plan-assistant/internal/task"
)

// ApprovePlan commits the pending plan, or the subset picked by index.
// Approval consumes the pending plan either way.
func (uc *implUseCase) ApprovePlan(ctx context.Context, sc model.Scope, input chat.ApprovePlanInput) (chat.ApprovePlanOutput, error) {
	if !uc.acquire(sc.UserID) {
		return chat.ApprovePlanOutput{}, chat.ErrTurnInProgress
	}
	defer uc.release(sc.UserID)

	pending, ok := uc.pending.Get(sc.UserID)
	if !ok {
		return chat.ApprovePlanOutput{}, chat.ErrNoPendingPlan
	}

	selected, err := selectCandidates(pending, input.Indexes)
	if err != nil {
		return chat.ApprovePlanOutput{}, err
	}

	existing, err := uc.repo.ListByUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "ApprovePlan: listing tasks: %v", err)
		return chat.ApprovePlanOutput{}, err
	}

	if conflicts := plan.DetectConflicts(selected, existing); len(conflicts) > 0 && !input.Force {
		return chat.ApprovePlanOutput{}, fmt.Errorf("%w: %d overlap(s)", chat.ErrPlanConflicts, len(conflicts))
	}

	out, err := uc.taskUC.Commit(ctx, sc, task.CommitInput{
		Candidates:       selected,
		ExportToCalendar: input.ExportToCalendar || uc.exportToCalendar,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ApprovePlan: commit failed: %v", err)
		return chat.ApprovePlanOutput{}, err
	}

	uc.pending.Remove(sc.UserID)

	summary := commitSummary(out.Tasks)
	if err := uc.conv.AddAssistant(ctx, sc.UserID, summary); err != nil {
		uc.l.Warnf(ctx, "ApprovePlan: recording summary failed (non-fatal): %v", err)
	}

	uc.l.Infof(ctx, "ApprovePlan: user=%s committed %d of %d pending tasks", sc.UserID, out.Count, len(pending))

	return chat.ApprovePlanOutput{Tasks: out.Tasks, Message: summary}, nil
}

func selectCandidates(pending []plan.Candidate, indexes []int) ([]plan.Candidate, error) {
	if len(indexes) == 0 {
		return pending, nil
	}

	selected := make([]plan.Candidate, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(pending) {
			return nil, chat.ErrInvalidSelection
		}
		selected = append(selected, pending[i])
	}
	return selected, nil
}
