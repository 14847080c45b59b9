// Package conversation persists per-user chat transcripts and builds the
// system prompt sent ahead of them.
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"study-plan-assistant/internal/storage"
	"study-plan-assistant/pkg/openrouter"
)

const historyKey = "conversation_history"

// maxHistory caps the persisted transcript. Older messages are dropped
// from the front once the cap is reached, keeping recent context within
// the model's window.
const maxHistory = 40

// Store reads and writes a user's transcript in the key/value store.
// Messages are persisted as a JSON array in chat-completion shape, so a
// loaded transcript can be sent to the model as-is.
type Store struct {
	data storage.UserDataStore
}

func NewStore(data storage.UserDataStore) *Store {
	return &Store{data: data}
}

// Messages returns the user's transcript, oldest first. A user with no
// history gets an empty slice, not an error.
func (s *Store) Messages(ctx context.Context, userID string) ([]openrouter.Message, error) {
	raw, err := s.data.Get(ctx, userID, historyKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading conversation: %w", err)
	}

	var messages []openrouter.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("decoding conversation: %w", err)
	}
	return messages, nil
}

// AddUser appends a user message to the transcript.
func (s *Store) AddUser(ctx context.Context, userID, content string) error {
	return s.append(ctx, userID, openrouter.Message{Role: openrouter.RoleUser, Content: content})
}

// AddAssistant appends an assistant message to the transcript.
func (s *Store) AddAssistant(ctx context.Context, userID, content string) error {
	return s.append(ctx, userID, openrouter.Message{Role: openrouter.RoleAssistant, Content: content})
}

// RemoveLast drops the most recent message. Used to roll back a user
// message when the model call that should have answered it failed, so
// the transcript never carries an unanswered turn.
func (s *Store) RemoveLast(ctx context.Context, userID string) error {
	messages, err := s.Messages(ctx, userID)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}
	return s.persist(ctx, userID, messages[:len(messages)-1])
}

// Reset deletes the user's transcript.
func (s *Store) Reset(ctx context.Context, userID string) error {
	if err := s.data.Delete(ctx, userID, historyKey); err != nil {
		return fmt.Errorf("resetting conversation: %w", err)
	}
	return nil
}

func (s *Store) append(ctx context.Context, userID string, msg openrouter.Message) error {
	messages, err := s.Messages(ctx, userID)
	if err != nil {
		return err
	}

	messages = append(messages, msg)
	if len(messages) > maxHistory {
		messages = messages[len(messages)-maxHistory:]
	}

	return s.persist(ctx, userID, messages)
}

func (s *Store) persist(ctx context.Context, userID string, messages []openrouter.Message) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encoding conversation: %w", err)
	}
	if err := s.data.Set(ctx, userID, historyKey, string(raw)); err != nil {
		return fmt.Errorf("saving conversation: %w", err)
	}
	return nil
}
