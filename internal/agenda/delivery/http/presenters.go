package http

import (
	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/agenda/conflict"
	"agenda-assistant/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name     string `json:"name"     binding:"max=255"`
	Date     string `json:"date"     binding:"required"`
	Time     string `json:"time"     binding:"required"`
	Duration int    `json:"duration" binding:"omitempty,min=1"`
	Priority int    `json:"priority" binding:"omitempty,min=1,max=5"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() agenda.CreateInput {
	return agenda.CreateInput{
		Name:     r.Name,
		Date:     r.Date,
		Time:     r.Time,
		Duration: r.Duration,
		Priority: r.Priority,
	}
}

// ---

// updateReq is a sparse patch: absent fields stay nil and are not applied.
type updateReq struct {
	ID       int     `json:"-"` // populated from URI param
	Name     *string `json:"name"     binding:"omitempty,min=1,max=255"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration" binding:"omitempty,min=1"`
	Priority *int    `json:"priority" binding:"omitempty,min=1,max=5"`
	Status   *string `json:"status"   binding:"omitempty,oneof=Scheduled InProgress Done NeedsReschedule"`
	Comment  *string `json:"comment"  binding:"omitempty,max=500"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() agenda.UpdateInput {
	input := agenda.UpdateInput{
		ID:       r.ID,
		Name:     r.Name,
		Date:     r.Date,
		Time:     r.Time,
		Duration: r.Duration,
		Priority: r.Priority,
		Comment:  r.Comment,
	}
	if r.Status != nil {
		status := model.Status(*r.Status)
		input.Status = &status
	}
	return input
}

// --- Response DTOs ---

type logEntryResp struct {
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Comment   string `json:"comment,omitempty"`
}

type taskResp struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Date     string         `json:"date"`
	Time     string         `json:"time"`
	Duration int            `json:"duration"`
	Priority int            `json:"priority"`
	Status   string         `json:"status"`
	Log      []logEntryResp `json:"log"`
}

func newTaskResp(task model.Task) taskResp {
	entries := make([]logEntryResp, len(task.Log))
	for i, e := range task.Log {
		entries[i] = logEntryResp{Timestamp: e.Timestamp, Action: e.Action, Comment: e.Comment}
	}
	return taskResp{
		ID:       task.ID,
		Name:     task.Name,
		Date:     task.Date,
		Time:     task.Time,
		Duration: task.Duration,
		Priority: task.Priority,
		Status:   string(task.Status),
		Log:      entries,
	}
}

type createResp struct {
	Task      taskResp        `json:"task"`
	Conflicts []conflict.Pair `json:"conflicts"`
	Total     int             `json:"total_conflicts"`
}

func (h *handler) newCreateResp(out agenda.CreateOutput) createResp {
	return createResp{
		Task:      newTaskResp(out.Task),
		Conflicts: out.Conflicts.Conflicts,
		Total:     out.Conflicts.Total,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out, Total: len(out)}
}

type conflictsResp struct {
	Conflicts []conflict.Pair `json:"conflicts"`
	Total     int             `json:"total"`
}

func (h *handler) newConflictsResp(report conflict.Report) conflictsResp {
	return conflictsResp{Conflicts: report.Conflicts, Total: report.Total}
}

type statusSummaryResp struct {
	Summary map[string]int `json:"summary"`
}

func (h *handler) newStatusSummaryResp(counts map[model.Status]int) statusSummaryResp {
	summary := make(map[string]int, len(counts))
	for status, n := range counts {
		summary[string(status)] = n
	}
	return statusSummaryResp{Summary: summary}
}

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}

type rescheduleResp struct {
	Task        taskResp `json:"task"`
	Suggestions []string `json:"suggestions"`
}

func (h *handler) newRescheduleResp(out agenda.RescheduleOutput) rescheduleResp {
	return rescheduleResp{
		Task:        newTaskResp(out.Task),
		Suggestions: out.Suggestions,
	}
}
