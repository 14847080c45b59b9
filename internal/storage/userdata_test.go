package storage_test

import (
	"context"
	"errors"
	"testing"

	"study-plan-assistant/internal/storage"
)

func newTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	s, err := storage.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})
	return s
}

func TestUserData(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Get(ctx, "u1", "conversation"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "u1", "conversation", `[{"role":"system"}]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := s.Get(ctx, "u1", "conversation")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != `[{"role":"system"}]` {
		t.Errorf("unexpected value: %q", got)
	}

	// Values are scoped per user.
	if _, err := s.Get(ctx, "u2", "conversation"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}

	// Overwrite wins.
	if err := s.Set(ctx, "u1", "conversation", `[]`); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = s.Get(ctx, "u1", "conversation")
	if got != `[]` {
		t.Errorf("expected overwritten value, got %q", got)
	}

	if err := s.Delete(ctx, "u1", "conversation"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "u1", "conversation"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing key is fine.
	if err := s.Delete(ctx, "u1", "conversation"); err != nil {
		t.Fatalf("delete of missing key should not error: %v", err)
	}
}
