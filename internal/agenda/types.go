package agenda

import (
	"agenda-assistant/internal/agenda/conflict"
	"agenda-assistant/internal/model"
)

// Defaults applied when a create request leaves optional fields unset.
const (
	DefaultName     = "Meeting"
	DefaultDuration = 30
	DefaultPriority = 3
)

// --- UseCase Inputs ---

// CreateInput is the input for creating a task. Date and Time are required;
// Name, Duration and Priority fall back to the defaults above when zero.
type CreateInput struct {
	Name     string
	Date     string // "YYYY-MM-DD"
	Time     string // "HH:MM"
	Duration int    // minutes
	Priority int    // 1..5
}

// UpdateInput is a sparse patch: only non-nil fields are applied.
// Comment, when set, is recorded on the log entry for this mutation.
type UpdateInput struct {
	ID       int
	Name     *string
	Date     *string
	Time     *string
	Duration *int
	Priority *int
	Status   *model.Status
	Comment  *string
}

// --- UseCase Outputs ---

// CreateOutput carries the created task together with the conflict report
// computed right after insertion, so callers can warn about new overlaps.
type CreateOutput struct {
	Task      model.Task
	Conflicts conflict.Report
}

// RescheduleOutput lists conflict-free alternative start times ("HH:MM") for
// a task on its own date.
type RescheduleOutput struct {
	Task        model.Task
	Suggestions []string
}
