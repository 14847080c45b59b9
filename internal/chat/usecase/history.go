package usecase

import (
	"context"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/pkg/openrouter"
)

// History returns the user's conversation transcript.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) ([]openrouter.Message, error) {
	return uc.conv.Messages(ctx, sc.UserID)
}

// Reset clears the user's transcript and any pending plan.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	uc.pending.Remove(sc.UserID)
	return uc.conv.Reset(ctx, sc.UserID)
}
