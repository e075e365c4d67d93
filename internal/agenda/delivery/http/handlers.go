package http

import (
	"github.com/gin-gonic/gin"

	"agenda-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task and reports any schedule overlaps it introduces.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - duplicate task"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task sorted by date then time.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(task))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a sparse patch; absent fields are left untouched.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task. Its ID is never reused.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Pending godoc
// @Summary     List pending tasks
// @Description Returns tasks due on or before today that are still open.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/pending [GET]
func (h *handler) Pending(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.Pending(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Pending: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// StatusSummary godoc
// @Summary     Count tasks per status
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statusSummaryResp
// @Router      /api/v1/tasks/status-summary [GET]
func (h *handler) StatusSummary(c *gin.Context) {
	ctx := c.Request.Context()

	counts, err := h.uc.StatusSummary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StatusSummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusSummaryResp(counts))
}

// Conflicts godoc
// @Summary     Report schedule conflicts
// @Description Returns every pair of tasks whose time ranges overlap.
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} conflictsResp
// @Router      /api/v1/conflicts [GET]
func (h *handler) Conflicts(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.uc.Conflicts(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Conflicts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newConflictsResp(report))
}

// Suggestions godoc
// @Summary     Render the schedule summary
// @Description One human-readable line per task, in schedule order.
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} suggestionsResp
// @Router      /api/v1/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	lines, err := h.uc.ScheduleSummary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleSummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, suggestionsResp{Suggestions: lines})
}

// Reschedule godoc
// @Summary     Suggest alternative slots
// @Description Up to three conflict-free start times for the task on its own date.
// @Tags        Schedule
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} rescheduleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/reschedule [GET]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Reschedule(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reschedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRescheduleResp(output))
}
