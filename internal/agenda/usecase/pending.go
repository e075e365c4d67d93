package usecase

import (
	"context"

	"agenda-assistant/internal/model"
)

// Pending returns tasks due on or before today that are still Scheduled or
// InProgress. "Today" comes from the injected clock.
func (uc *implUseCase) Pending(ctx context.Context) ([]model.Task, error) {
	asOf := uc.clock().Format(model.DateFormat)
	tasks, err := uc.repo.Pending(ctx, asOf)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Pending repo.Pending: %v", err)
		return nil, err
	}
	return tasks, nil
}
