// Package schedule stores the user's recurring commitments and study
// preferences, and renders them as the schedule context given to the
// model.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"study-plan-assistant/internal/storage"
)

const (
	classesKey  = "semester_classes"
	freeTimeKey = "free_time"
	prefsKey    = "study_preferences"
)

// Class is one recurring weekly class meeting.
type Class struct {
	Name      string `json:"name"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location,omitempty"`
}

// FreeSlot is a recurring weekly window the user marked as available
// for studying.
type FreeSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Preferences tunes how plans are proposed for this user.
type Preferences struct {
	SessionMinutes int    `json:"session_minutes,omitempty"`
	TimeOfDay      string `json:"time_of_day,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Manager reads and writes schedule data in the user key/value store.
type Manager struct {
	data storage.UserDataStore
}

func NewManager(data storage.UserDataStore) *Manager {
	return &Manager{data: data}
}

// Classes returns the user's semester classes; empty for a new user.
func (m *Manager) Classes(ctx context.Context, userID string) ([]Class, error) {
	var classes []Class
	if err := m.load(ctx, userID, classesKey, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *Manager) SetClasses(ctx context.Context, userID string, classes []Class) error {
	return m.save(ctx, userID, classesKey, classes)
}

// FreeTime returns the user's recurring free slots; empty for a new user.
func (m *Manager) FreeTime(ctx context.Context, userID string) ([]FreeSlot, error) {
	var slots []FreeSlot
	if err := m.load(ctx, userID, freeTimeKey, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (m *Manager) SetFreeTime(ctx context.Context, userID string, slots []FreeSlot) error {
	return m.save(ctx, userID, freeTimeKey, slots)
}

// StudyPreferences returns the user's preferences; the zero value for a
// new user.
func (m *Manager) StudyPreferences(ctx context.Context, userID string) (Preferences, error) {
	var prefs Preferences
	if err := m.load(ctx, userID, prefsKey, &prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

func (m *Manager) SetStudyPreferences(ctx context.Context, userID string, prefs Preferences) error {
	return m.save(ctx, userID, prefsKey, prefs)
}

func (m *Manager) load(ctx context.Context, userID, key string, out any) error {
	raw, err := m.data.Get(ctx, userID, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (m *Manager) save(ctx context.Context, userID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := m.data.Set(ctx, userID, key, string(raw)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// weekdayOrder returns the seven weekday names starting from now's
// weekday, so the rendered schedule leads with the most relevant days.
func weekdayOrder(now time.Time) []string {
	days := make([]string, 7)
	for i := 0; i < 7; i++ {
		days[i] = time.Weekday((int(now.Weekday()) + i) % 7).String()
	}
	return days
}
