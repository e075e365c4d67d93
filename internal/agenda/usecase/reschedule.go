package usecase

import (
	"context"
	"time"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/model"
)

const (
	rescheduleStep           = 15 * time.Minute
	rescheduleMaxSuggestions = 3
)

// Reschedule proposes conflict-free alternative start times for a task on its
// own date: it walks forward from the task's start in 15-minute steps and
// keeps slots that would overlap no other task and still end by midnight.
func (uc *implUseCase) Reschedule(ctx context.Context, id int) (agenda.RescheduleOutput, error) {
	task, err := uc.Detail(ctx, id)
	if err != nil {
		return agenda.RescheduleOutput{}, err
	}

	iv, ok := task.Interval()
	if !ok {
		return agenda.RescheduleOutput{}, agenda.ErrInvalidDate
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule repo.List: %v", err)
		return agenda.RescheduleOutput{}, err
	}

	others := make([]model.Interval, 0, len(all))
	for _, t := range all {
		if t.ID == id {
			continue
		}
		if other, parsed := t.Interval(); parsed {
			others = append(others, other)
		}
	}

	duration := iv.End.Sub(iv.Start)
	endOfDay := time.Date(iv.Start.Year(), iv.Start.Month(), iv.Start.Day(), 0, 0, 0, 0, iv.Start.Location()).AddDate(0, 0, 1)

	suggestions := []string{}
	for start := iv.Start.Add(rescheduleStep); len(suggestions) < rescheduleMaxSuggestions; start = start.Add(rescheduleStep) {
		candidate := model.Interval{Start: start, End: start.Add(duration)}
		if candidate.End.After(endOfDay) {
			break
		}
		free := true
		for _, other := range others {
			if candidate.Overlaps(other) {
				free = false
				break
			}
		}
		if free {
			suggestions = append(suggestions, start.Format(model.TimeFormat))
		}
	}

	return agenda.RescheduleOutput{Task: task, Suggestions: suggestions}, nil
}
