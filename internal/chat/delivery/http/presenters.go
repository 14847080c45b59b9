package http

import (
	"study-plan-assistant/internal/chat"
	"study-plan-assistant/internal/plan"
	"study-plan-assistant/internal/task"
	"study-plan-assistant/pkg/openrouter"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message string `json:"message" binding:"required,min=1,max=4000"`
}

func (r sendMessageReq) toInput() chat.ProcessMessageInput {
	return chat.ProcessMessageInput{Message: r.Message}
}

type approveReq struct {
	Indexes          []int `json:"indexes"`
	Force            bool  `json:"force"`
	ExportToCalendar bool  `json:"export_to_calendar"`
}

func (r approveReq) toInput() chat.ApprovePlanInput {
	return chat.ApprovePlanInput{
		Indexes:          r.Indexes,
		Force:            r.Force,
		ExportToCalendar: r.ExportToCalendar,
	}
}

// --- Response DTOs ---

type committedTaskResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Day          string `json:"day"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TaskType     string `json:"task_type"`
	Priority     string `json:"priority"`
	CalendarLink string `json:"calendar_link,omitempty"`
}

func newCommittedTaskResp(t task.CommittedTask) committedTaskResp {
	return committedTaskResp{
		ID:           t.Task.ID,
		Title:        t.Task.Title,
		Date:         t.Task.Date,
		Day:          t.Task.Day,
		StartTime:    t.Task.StartTime,
		EndTime:      t.Task.EndTime,
		TaskType:     t.Task.TaskType,
		Priority:     t.Task.Priority,
		CalendarLink: t.CalendarLink,
	}
}

type processResp struct {
	Reply        string              `json:"reply"`
	PendingPlan  []plan.Candidate    `json:"pending_plan,omitempty"`
	Confirmation string              `json:"confirmation,omitempty"`
	Conflicts    []plan.Conflict     `json:"conflicts,omitempty"`
	Advice       []plan.Advice       `json:"advice,omitempty"`
	Committed    []committedTaskResp `json:"committed,omitempty"`
}

func (h *Handler) newProcessResp(out chat.ProcessMessageOutput) processResp {
	resp := processResp{
		Reply:        out.Reply,
		PendingPlan:  out.PendingPlan,
		Confirmation: out.Confirmation,
		Conflicts:    out.Conflicts,
		Advice:       out.Advice,
	}
	for _, t := range out.Committed {
		resp.Committed = append(resp.Committed, newCommittedTaskResp(t))
	}
	return resp
}

type approveResp struct {
	Tasks   []committedTaskResp `json:"tasks"`
	Message string              `json:"message"`
}

func (h *Handler) newApproveResp(out chat.ApprovePlanOutput) approveResp {
	resp := approveResp{Message: out.Message}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, newCommittedTaskResp(t))
	}
	return resp
}

type messageResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
	Count    int           `json:"count"`
}

func newHistoryResp(messages []openrouter.Message) historyResp {
	out := historyResp{Messages: make([]messageResp, len(messages)), Count: len(messages)}
	for i, m := range messages {
		out.Messages[i] = messageResp{Role: m.Role, Content: m.Content}
	}
	return out
}
