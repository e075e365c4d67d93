package http

import (
	"errors"

	"agenda-assistant/internal/agenda"
	pkgErrors "agenda-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agenda.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, agenda.ErrDuplicateTask):
		return pkgErrors.NewHTTPError(409, "task already exists")
	case errors.Is(err, agenda.ErrMissingDate),
		errors.Is(err, agenda.ErrMissingTime),
		errors.Is(err, agenda.ErrInvalidDate),
		errors.Is(err, agenda.ErrInvalidTime),
		errors.Is(err, agenda.ErrInvalidDuration),
		errors.Is(err, agenda.ErrInvalidPriority),
		errors.Is(err, agenda.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
