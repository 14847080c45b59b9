package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a user has no value stored under a key.
var ErrNotFound = errors.New("user data not found")

// UserDataStore is per-user key/value persistence. Values are opaque
// strings; callers marshal their own JSON.
type UserDataStore interface {
	Get(ctx context.Context, userID, key string) (string, error)
	Set(ctx context.Context, userID, key, value string) error
	Delete(ctx context.Context, userID, key string) error
}

// Get returns the value stored for (userID, key), or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, userID, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value,
		"SELECT value FROM user_data WHERE user_id = ? AND key = ?", userID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading user data %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under (userID, key), replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, userID, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_data (user_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		userID, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing user data %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under (userID, key). Deleting a missing
// key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, userID, key string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM user_data WHERE user_id = ? AND key = ?", userID, key)
	if err != nil {
		return fmt.Errorf("deleting user data %q: %w", key, err)
	}
	return nil
}
