package usecase

import (
	"time"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/interpreter"
	"agenda-assistant/pkg/datemath"
	"agenda-assistant/pkg/log"
)

// implUseCase is the private implementation of interpreter.UseCase.
type implUseCase struct {
	l        log.Logger
	agendaUC agenda.UseCase
	dates    *datemath.Parser
	clock    func() time.Time
	rules    []rule
}

var _ interpreter.UseCase = (*implUseCase)(nil)

// New creates a new interpreter UseCase. clock defaults to time.Now when nil;
// it anchors the "today"/"tomorrow" keywords.
func New(l log.Logger, agendaUC agenda.UseCase, dates *datemath.Parser, clock func() time.Time) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	uc := &implUseCase{
		l:        l,
		agendaUC: agendaUC,
		dates:    dates,
		clock:    clock,
	}
	uc.rules = uc.buildRules()
	return uc
}
