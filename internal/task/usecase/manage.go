package usecase

import (
	"context"
	"errors"
	"time"

	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/task"
	"study-plan-assistant/internal/task/repository"
	"study-plan-assistant/pkg/clocktime"
)

// List returns the user's tasks, filtered to one date when given.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	var (
		tasks []model.Task
		err   error
	)
	if input.Date != "" {
		tasks, err = uc.repo.ListByUserDate(ctx, sc.UserID, input.Date)
	} else {
		tasks, err = uc.repo.ListByUser(ctx, sc.UserID)
	}
	if err != nil {
		uc.l.Errorf(ctx, "List: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}

// Update applies the non-empty fields of input to the task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	t, err := uc.repo.GetByID(ctx, sc.UserID, input.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "Update: %v", err)
		return model.Task{}, err
	}

	if input.Title != "" {
		t.Title = input.Title
	}
	if input.Description != "" {
		t.Description = input.Description
	}
	if input.Date != "" {
		day, err := model.DayFromDate(input.Date)
		if err != nil {
			return model.Task{}, task.ErrInvalidDate
		}
		t.Date = input.Date
		t.Day = day
	}
	if input.StartTime != "" {
		if _, err := clocktime.ToMinutes(input.StartTime); err != nil {
			return model.Task{}, task.ErrInvalidTime
		}
		t.StartTime = clocktime.Normalize(input.StartTime)
	}
	if input.EndTime != "" {
		if _, err := clocktime.ToMinutes(input.EndTime); err != nil {
			return model.Task{}, task.ErrInvalidTime
		}
		t.EndTime = clocktime.Normalize(input.EndTime)
	}
	if input.TaskType != "" {
		if !model.ValidTaskType(input.TaskType) {
			return model.Task{}, task.ErrInvalidType
		}
		t.TaskType = input.TaskType
	}
	if input.Priority != "" {
		if !model.ValidPriority(input.Priority) {
			return model.Task{}, task.ErrInvalidPriority
		}
		t.Priority = input.Priority
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Update: %v", err)
		return model.Task{}, err
	}

	return t, nil
}

// CheckTimeConflict returns the user's same-date tasks whose time window
// overlaps the given one. Deadlines never conflict.
func (uc *implUseCase) CheckTimeConflict(ctx context.Context, sc model.Scope, input task.CheckConflictInput) ([]model.Task, error) {
	if _, err := time.Parse(model.DateFormatISO, input.Date); err != nil {
		return nil, task.ErrInvalidDate
	}
	start, err := clocktime.ToMinutes(input.StartTime)
	if err != nil {
		return nil, task.ErrInvalidTime
	}
	end, err := clocktime.ToMinutes(input.EndTime)
	if err != nil {
		return nil, task.ErrInvalidTime
	}
	if start >= end {
		return nil, task.ErrInvalidTime
	}

	existing, err := uc.repo.ListByUserDate(ctx, sc.UserID, input.Date)
	if err != nil {
		uc.l.Errorf(ctx, "CheckTimeConflict: %v", err)
		return nil, err
	}

	var conflicts []model.Task
	for _, t := range existing {
		if t.ID == input.ExcludeID || t.TaskType == string(model.TaskTypeDeadline) {
			continue
		}
		ts, err := clocktime.ToMinutes(t.StartTime)
		if err != nil {
			continue
		}
		te, err := clocktime.ToMinutes(t.EndTime)
		if err != nil || ts >= te {
			continue
		}
		if start < te && end > ts {
			conflicts = append(conflicts, t)
		}
	}
	return conflicts, nil
}

// Delete removes one task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.Delete(ctx, sc.UserID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "Delete: %v", err)
	}
	return err
}
