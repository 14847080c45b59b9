package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list query parameters.
func (h *Handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processConflictsReq binds and validates the conflict-check query parameters.
func (h *Handler) processConflictsReq(c *gin.Context) (conflictsReq, error) {
	var req conflictsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *Handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}
