// Package http exposes the user's recurring schedule and study
// preferences over HTTP.
package http

import (
	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/middleware"
	"study-plan-assistant/internal/schedule"
	pkgLog "study-plan-assistant/pkg/log"
	"study-plan-assistant/pkg/response"
)

type Handler struct {
	l   pkgLog.Logger
	mgr *schedule.Manager
}

// New creates a new HTTP handler for schedule data.
func New(l pkgLog.Logger, mgr *schedule.Manager) *Handler {
	return &Handler{l: l, mgr: mgr}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule")
	{
		sched.GET("/classes", mw.Auth(), mw.RateLimit(), h.GetClasses)
		sched.PUT("/classes", mw.Auth(), mw.RateLimit(), h.SetClasses)
		sched.GET("/free-time", mw.Auth(), mw.RateLimit(), h.GetFreeTime)
		sched.PUT("/free-time", mw.Auth(), mw.RateLimit(), h.SetFreeTime)
		sched.GET("/preferences", mw.Auth(), mw.RateLimit(), h.GetPreferences)
		sched.PUT("/preferences", mw.Auth(), mw.RateLimit(), h.SetPreferences)
	}
}

// GetClasses godoc
// @Summary     Get semester classes
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/schedule/classes [GET]
func (h *Handler) GetClasses(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	classes, err := h.mgr.Classes(ctx, sc.UserID)
	if err != nil {
		h.l.Errorf(ctx, "mgr.Classes: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"classes": classes})
}

// SetClasses godoc
// @Summary     Replace semester classes
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body []schedule.Class true "Weekly classes"
// @Success     200 {object} response.Resp
// @Router      /api/v1/schedule/classes [PUT]
func (h *Handler) SetClasses(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var classes []schedule.Class
	if err := c.ShouldBindJSON(&classes); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.mgr.SetClasses(ctx, sc.UserID, classes); err != nil {
		h.l.Errorf(ctx, "mgr.SetClasses: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, nil)
}

// GetFreeTime godoc
// @Summary     Get free-time windows
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/schedule/free-time [GET]
func (h *Handler) GetFreeTime(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	slots, err := h.mgr.FreeTime(ctx, sc.UserID)
	if err != nil {
		h.l.Errorf(ctx, "mgr.FreeTime: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"free_time": slots})
}

// SetFreeTime godoc
// @Summary     Replace free-time windows
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body []schedule.FreeSlot true "Weekly free slots"
// @Success     200 {object} response.Resp
// @Router      /api/v1/schedule/free-time [PUT]
func (h *Handler) SetFreeTime(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var slots []schedule.FreeSlot
	if err := c.ShouldBindJSON(&slots); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.mgr.SetFreeTime(ctx, sc.UserID, slots); err != nil {
		h.l.Errorf(ctx, "mgr.SetFreeTime: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, nil)
}

// GetPreferences godoc
// @Summary     Get study preferences
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/schedule/preferences [GET]
func (h *Handler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	prefs, err := h.mgr.StudyPreferences(ctx, sc.UserID)
	if err != nil {
		h.l.Errorf(ctx, "mgr.StudyPreferences: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"preferences": prefs})
}

// SetPreferences godoc
// @Summary     Replace study preferences
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body schedule.Preferences true "Preferences"
// @Success     200 {object} response.Resp
// @Router      /api/v1/schedule/preferences [PUT]
func (h *Handler) SetPreferences(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var prefs schedule.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.mgr.SetStudyPreferences(ctx, sc.UserID, prefs); err != nil {
		h.l.Errorf(ctx, "mgr.SetStudyPreferences: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, nil)
}
