package http

import (
	"github.com/gin-gonic/gin"
)

// processSendMessageReq binds and validates the chat message body.
func (h *Handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processApproveReq binds the approval options body. An empty body means
// "approve everything".
func (h *Handler) processApproveReq(c *gin.Context) (approveReq, error) {
	var req approveReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
