package usecase

import (
	"context"

	"agenda-assistant/internal/agenda/conflict"
)

// Conflicts runs the conflict detector over the current task set. Detection is
// pure, so the report is memoized against the store revision.
func (uc *implUseCase) Conflicts(ctx context.Context) (conflict.Report, error) {
	rev := uc.repo.Revision()
	if report, ok := uc.cache.Get(rev); ok {
		return report, nil
	}

	tasks, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Conflicts repo.List: %v", err)
		return conflict.Report{}, err
	}

	report := conflict.Detect(tasks)
	uc.cache.Add(rev, report)
	return report, nil
}
