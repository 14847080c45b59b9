package chat

import (
	"context"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/pkg/openrouter"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// ProcessMessage runs one conversation turn: it forwards the user's
	// message to the model, extracts a proposed plan from the reply when
	// there is one, and handles yes/no answers to a pending proposal.
	// Only one turn per user may be in flight at a time.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessMessageInput) (ProcessMessageOutput, error)

	// ApprovePlan commits the user's pending plan, or a subset of it
	// selected by index.
	ApprovePlan(ctx context.Context, sc model.Scope, input ApprovePlanInput) (ApprovePlanOutput, error)

	// History returns the user's conversation transcript.
	History(ctx context.Context, sc model.Scope) ([]openrouter.Message, error)

	// Reset clears the user's transcript and any pending plan.
	Reset(ctx context.Context, sc model.Scope) error
}
