package model

import (
	"fmt"
	"time"
)

// DateFormatISO is the calendar date format used everywhere in the service.
const DateFormatISO = "2006-01-02"

// TaskType classifies a schedulable unit.
type TaskType string

const (
	TaskTypeStudy    TaskType = "Study"
	TaskTypeBreak    TaskType = "Break"
	TaskTypeDeadline TaskType = "Deadline"
)

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Task is a committed schedulable unit on a user's calendar.
//
// Date is ISO YYYY-MM-DD and Day is always derived from it. StartTime and
// EndTime are "HH:MM AM/PM" clock strings; for a Deadline they are equal
// (a point in time), for Study/Break StartTime < EndTime within one day.
type Task struct {
	ID          string `db:"id" json:"task_id"`
	UserID      string `db:"user_id" json:"-"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description,omitempty"`
	Date        string `db:"date" json:"date"`
	Day         string `db:"day" json:"day"`
	StartTime   string `db:"start_time" json:"start_time"`
	EndTime     string `db:"end_time" json:"end_time"`
	TaskType    string `db:"task_type" json:"task_type"`
	Priority    string `db:"priority" json:"priority"`
	CreatedAt   string `db:"created_at" json:"created_at,omitempty"`
}

// DayFromDate derives the weekday name from an ISO date string.
func DayFromDate(date string) (string, error) {
	t, err := time.Parse(DateFormatISO, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Weekday().String(), nil
}

// ValidTaskType reports whether s names a known task type (case-sensitive).
func ValidTaskType(s string) bool {
	switch TaskType(s) {
	case TaskTypeStudy, TaskTypeBreak, TaskTypeDeadline:
		return true
	}
	return false
}

// ValidPriority reports whether s names a known priority (case-sensitive).
func ValidPriority(s string) bool {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
