package agenda

import (
	"context"

	"agenda-assistant/internal/agenda/conflict"
	"agenda-assistant/internal/model"
)

// UseCase defines the business logic interface for the agenda domain.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context) ([]model.Task, error)
	Detail(ctx context.Context, id int) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id int) error

	// Exists reports whether a task with the same (name, date, time) triple
	// already exists; used for duplicate suppression before creation.
	Exists(ctx context.Context, name, date, tm string) (bool, error)

	// Conflicts returns every pair of overlapping tasks.
	Conflicts(ctx context.Context) (conflict.Report, error)

	// Pending returns tasks due on or before today that are still open.
	Pending(ctx context.Context) ([]model.Task, error)

	// StatusSummary counts tasks per status.
	StatusSummary(ctx context.Context) (map[model.Status]int, error)

	// ScheduleSummary renders one human-readable line per task, in list order.
	ScheduleSummary(ctx context.Context) ([]string, error)

	// Reschedule suggests conflict-free alternative start times for a task.
	Reschedule(ctx context.Context, id int) (RescheduleOutput, error)
}
