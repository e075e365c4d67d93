package usecase

import (
	"context"
	"strings"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/agenda/repository"
	"agenda-assistant/internal/model"
	"agenda-assistant/pkg/gcalendar"
)

// Create validates and stores a new task, then reports any overlaps the new
// task introduced. When a calendar mirror is configured the task is also
// pushed there, best effort.
func (uc *implUseCase) Create(ctx context.Context, input agenda.CreateInput) (agenda.CreateOutput, error) {
	date, err := canonicalDate(input.Date)
	if err != nil {
		return agenda.CreateOutput{}, err
	}
	tm, err := canonicalTime(input.Time)
	if err != nil {
		return agenda.CreateOutput{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = agenda.DefaultName
	}

	duration := input.Duration
	if duration == 0 {
		duration = agenda.DefaultDuration
	}
	if !validDuration(duration) {
		return agenda.CreateOutput{}, agenda.ErrInvalidDuration
	}

	priority := input.Priority
	if priority == 0 {
		priority = agenda.DefaultPriority
	}
	if !validPriority(priority) {
		return agenda.CreateOutput{}, agenda.ErrInvalidPriority
	}

	exists, err := uc.Exists(ctx, name, date, tm)
	if err != nil {
		return agenda.CreateOutput{}, err
	}
	if exists {
		return agenda.CreateOutput{}, agenda.ErrDuplicateTask
	}

	task, err := uc.repo.Create(ctx, repository.CreateOptions{
		Name:     name,
		Date:     date,
		Time:     tm,
		Duration: duration,
		Priority: priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.Create: %v", err)
		return agenda.CreateOutput{}, err
	}

	report, err := uc.Conflicts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Conflicts: %v", err)
		return agenda.CreateOutput{}, err
	}

	uc.mirrorToCalendar(ctx, task)

	return agenda.CreateOutput{Task: task, Conflicts: report}, nil
}

// mirrorToCalendar pushes the task to Google Calendar when configured.
// Failures are logged and never fail the create.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, task model.Task) {
	if uc.calendar == nil {
		return
	}

	iv, ok := task.Interval()
	if !ok {
		return
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    task.Name,
		StartTime:  iv.Start,
		EndTime:    iv.End,
		Timezone:   uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar mirror failed for task %d: %v", task.ID, err)
		return
	}
	uc.l.Debugf(ctx, "mirrored task %d to calendar", task.ID)
}
