package http

import (
	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/middleware"
	"study-plan-assistant/internal/task"
	"study-plan-assistant/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks, optionally filtered to one date.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       date query string false "Filter by ISO date (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// CheckConflicts godoc
// @Summary     Check a time window for conflicts
// @Description Returns the user's tasks overlapping the given window. Used before manual edits.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       date       query string true  "ISO date (YYYY-MM-DD)"
// @Param       start_time query string true  "Start time (HH:MM AM/PM)"
// @Param       end_time   query string true  "End time (HH:MM AM/PM)"
// @Param       exclude_id query string false "Task ID to skip (the one being edited)"
// @Success     200 {object} conflictsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/conflicts [GET]
func (h *Handler) CheckConflicts(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processConflictsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	conflicts, err := h.uc.CheckTimeConflict(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckTimeConflict: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newConflictsResp(conflicts))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update to one task. Empty fields are left unchanged.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes one task by ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, task.ErrNotFound, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
