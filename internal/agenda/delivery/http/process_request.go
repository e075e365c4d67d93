package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "agenda-assistant/pkg/errors"
)

// processID parses the :id URI param.
func (h *handler) processID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(400, "task id must be a positive integer")
	}
	return id, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}
