package repository

import (
	"context"

	"agenda-assistant/internal/model"
)

// Repository is the authoritative task store. All mutation passes through it;
// it owns ID allocation and the append-only log on every task.
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Task, error)

	// List returns all tasks sorted by (date, time) ascending; ties keep
	// insertion order.
	List(ctx context.Context) ([]model.Task, error)

	Get(ctx context.Context, id int) (model.Task, error)

	// Update applies only the fields set on opts and appends one log entry.
	Update(ctx context.Context, opts UpdateOptions) (model.Task, error)

	Delete(ctx context.Context, id int) error

	// Exists matches (name, date, time) case-insensitively with surrounding
	// whitespace ignored.
	Exists(ctx context.Context, name, date, tm string) (bool, error)

	// Pending returns tasks with date <= asOf whose status is Scheduled or
	// InProgress (the overdue-looking pending policy).
	Pending(ctx context.Context, asOf string) ([]model.Task, error)

	// Revision is a counter bumped on every mutation, letting callers cache
	// values derived from the task set.
	Revision() uint64
}
