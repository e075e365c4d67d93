package usecase

import (
	"context"
	"errors"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/agenda/repository"
	"agenda-assistant/internal/model"
)

// Update applies a sparse patch: only non-nil fields change. One log entry is
// appended per call.
func (uc *implUseCase) Update(ctx context.Context, input agenda.UpdateInput) (model.Task, error) {
	opts := repository.UpdateOptions{
		ID:      input.ID,
		Name:    input.Name,
		Comment: input.Comment,
	}

	if input.Date != nil {
		date, err := canonicalDate(*input.Date)
		if err != nil {
			return model.Task{}, err
		}
		opts.Date = &date
	}
	if input.Time != nil {
		tm, err := canonicalTime(*input.Time)
		if err != nil {
			return model.Task{}, err
		}
		opts.Time = &tm
	}
	if input.Duration != nil {
		if !validDuration(*input.Duration) {
			return model.Task{}, agenda.ErrInvalidDuration
		}
		opts.Duration = input.Duration
	}
	if input.Priority != nil {
		if !validPriority(*input.Priority) {
			return model.Task{}, agenda.ErrInvalidPriority
		}
		opts.Priority = input.Priority
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return model.Task{}, agenda.ErrInvalidStatus
		}
		opts.Status = input.Status
	}

	task, err := uc.repo.Update(ctx, opts)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, agenda.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update repo.Update: %v", err)
		return model.Task{}, err
	}
	return task, nil
}

// Delete removes a task permanently. Its ID is never reassigned.
func (uc *implUseCase) Delete(ctx context.Context, id int) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return agenda.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete repo.Delete: %v", err)
		return err
	}
	return nil
}
