package http

import (
	"study-plan-assistant/internal/model"
	"study-plan-assistant/internal/task"
)

// --- Request DTOs ---

type listReq struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Date: r.Date}
}

type conflictsReq struct {
	Date      string `form:"date"       binding:"required,datetime=2006-01-02"`
	StartTime string `form:"start_time" binding:"required"`
	EndTime   string `form:"end_time"   binding:"required"`
	ExcludeID string `form:"exclude_id" binding:"omitempty"`
}

func (r conflictsReq) toInput() task.CheckConflictInput {
	return task.CheckConflictInput{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		ExcludeID: r.ExcludeID,
	}
}

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Date        string `json:"date"        binding:"omitempty,datetime=2006-01-02"`
	StartTime   string `json:"start_time"  binding:"omitempty"`
	EndTime     string `json:"end_time"    binding:"omitempty"`
	TaskType    string `json:"task_type"   binding:"omitempty,oneof=Study Break Deadline"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=High Medium Low"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		TaskType:    r.TaskType,
		Priority:    r.Priority,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TaskType    string `json:"task_type"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		Day:         t.Day,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		TaskType:    t.TaskType,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *Handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Count: out.Count}
}

type conflictsResp struct {
	Conflicts   []taskResp `json:"conflicts"`
	HasConflict bool       `json:"has_conflict"`
}

func newConflictsResp(conflicts []model.Task) conflictsResp {
	resp := conflictsResp{HasConflict: len(conflicts) > 0}
	for _, t := range conflicts {
		resp.Conflicts = append(resp.Conflicts, newTaskResp(t))
	}
	return resp
}
