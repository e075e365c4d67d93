package repository

import "agenda-assistant/internal/model"

// CreateOptions carries already-validated fields for a new task. The store
// assigns the ID, sets status Scheduled and starts an empty log.
type CreateOptions struct {
	Name     string
	Date     string
	Time     string
	Duration int
	Priority int
}

// UpdateOptions is a sparse patch: nil fields are left unchanged.
// Comment, when set, becomes the comment on the appended log entry.
type UpdateOptions struct {
	ID       int
	Name     *string
	Date     *string
	Time     *string
	Duration *int
	Priority *int
	Status   *model.Status
	Comment  *string
}
