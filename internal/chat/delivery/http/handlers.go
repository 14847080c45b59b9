package http

import (
	"github.com/gin-gonic/gin"

	"study-plan-assistant/internal/middleware"
	"study-plan-assistant/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Runs one conversation turn. When the assistant proposes a study
// @Description plan, the response carries the parsed plan, detected conflicts,
// @Description and review notes alongside the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "User message"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - turn already in progress"
// @Failure     503 {object} response.Resp "Assistant unavailable"
// @Router      /api/v1/chat/messages [POST]
func (h *Handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// ApprovePlan godoc
// @Summary     Approve the pending plan
// @Description Commits the pending study plan, or the subset selected by index.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body approveReq true "Approval options"
// @Success     200 {object} approveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No pending plan"
// @Failure     409 {object} response.Resp "Plan conflicts with schedule"
// @Router      /api/v1/chat/plan/approve [POST]
func (h *Handler) ApprovePlan(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processApproveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ApprovePlan(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ApprovePlan: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newApproveResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns the user's transcript, oldest first.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *Handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	messages, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newHistoryResp(messages))
}

// Reset godoc
// @Summary     Reset the conversation
// @Description Clears the user's transcript and any pending plan.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [DELETE]
func (h *Handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if err := h.uc.Reset(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
