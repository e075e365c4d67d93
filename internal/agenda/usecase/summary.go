package usecase

import (
	"context"
	"fmt"

	"agenda-assistant/internal/model"
)

// StatusSummary counts tasks per status. Every known status appears in the
// result, zero or not.
func (uc *implUseCase) StatusSummary(ctx context.Context) (map[model.Status]int, error) {
	tasks, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.StatusSummary repo.List: %v", err)
		return nil, err
	}

	summary := make(map[model.Status]int, len(model.AllStatuses))
	for _, status := range model.AllStatuses {
		summary[status] = 0
	}
	for _, t := range tasks {
		summary[t.Status]++
	}
	return summary, nil
}

// ScheduleSummary renders one line per task in list order, e.g.
// "2025-01-10 - Standup (Scheduled, priority 3)".
func (uc *implUseCase) ScheduleSummary(ctx context.Context) ([]string, error) {
	tasks, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleSummary repo.List: %v", err)
		return nil, err
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("%s - %s (%s, priority %d)", t.Date, t.Name, t.Status, t.Priority))
	}
	return lines, nil
}
