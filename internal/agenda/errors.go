package agenda

import "errors"

// Domain-specific errors for the agenda package.
var (
	ErrMissingDate     = errors.New("task date is required")
	ErrMissingTime     = errors.New("task time is required")
	ErrInvalidDate     = errors.New("task date must be YYYY-MM-DD")
	ErrInvalidTime     = errors.New("task time must be HH:MM")
	ErrInvalidDuration = errors.New("task duration must be a positive number of minutes")
	ErrInvalidPriority = errors.New("task priority must be between 1 and 5")
	ErrInvalidStatus   = errors.New("unknown task status")
	ErrDuplicateTask   = errors.New("a task with the same name, date and time already exists")
	ErrTaskNotFound    = errors.New("task not found")
)
