package usecase

import (
	"context"
	"errors"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/agenda/repository"
	"agenda-assistant/internal/model"
)

// List returns all tasks sorted by (date, time).
func (uc *implUseCase) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List repo.List: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Detail retrieves a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, id int) (model.Task, error) {
	task, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, agenda.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail repo.Get: %v", err)
		return model.Task{}, err
	}
	return task, nil
}

// Exists reports whether a (name, date, time) triple is already booked.
func (uc *implUseCase) Exists(ctx context.Context, name, date, tm string) (bool, error) {
	found, err := uc.repo.Exists(ctx, name, date, tm)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Exists repo.Exists: %v", err)
		return false, err
	}
	return found, nil
}
