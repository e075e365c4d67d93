package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/interpreter"
)

// Rule matchers. Order of the rule list is part of the contract: the first
// matching rule wins, so greeting/help outranks create, and create outranks
// the structural edit/delete patterns.
var (
	helpRe     = regexp.MustCompile(`\b(hello|hi|help|commands)\b|what can you do`)
	createRe   = regexp.MustCompile(`\b(create|schedule|book|meeting|appointment)\b`)
	editRe     = regexp.MustCompile(`\b(?:edit|move)\s+(\d+)\s+(?:to\s+)?(today|tomorrow|\d{4}-\d{2}-\d{2})\s+(\d{1,2})[:.](\d{2})\b`)
	deleteRe   = regexp.MustCompile(`\b(?:delete|remove)\s+(\d+)\b`)
	pendingRe  = regexp.MustCompile(`\bpending\b|what do i have|my tasks`)
	conflictRe = regexp.MustCompile(`conflict|clash|overlap`)
)

// rule pairs a predicate with its handler. Keeping the list flat and ordered
// makes precedence explicit and testable.
type rule struct {
	name   string
	match  func(text string) bool
	handle func(ctx context.Context, text string) interpreter.Result
}

func (uc *implUseCase) buildRules() []rule {
	return []rule{
		{name: "help", match: helpRe.MatchString, handle: uc.handleHelp},
		{name: "create", match: createRe.MatchString, handle: uc.handleCreate},
		{name: "edit", match: editRe.MatchString, handle: uc.handleEdit},
		{name: "delete", match: deleteRe.MatchString, handle: uc.handleDelete},
		{name: "pending", match: pendingRe.MatchString, handle: uc.handlePending},
		{name: "conflicts", match: conflictRe.MatchString, handle: uc.handleConflicts},
	}
}

// Interpret classifies text into exactly one intent and executes it. The
// result is always structured; panics and errors degrade to an error intent
// rather than escaping to the caller.
func (uc *implUseCase) Interpret(ctx context.Context, text string) (result interpreter.Result) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "interpreter: recovered: %v", r)
			result = interpreter.Result{
				Intent:  interpreter.IntentError,
				Message: fmt.Sprintf("internal error: %v", r),
			}
		}
	}()

	text = strings.ToLower(strings.TrimSpace(text))

	for _, r := range uc.rules {
		if r.match(text) {
			uc.l.Debugf(ctx, "interpreter: rule %q matched", r.name)
			return r.handle(ctx, text)
		}
	}
	return uc.helpResult()
}

func (uc *implUseCase) helpResult() interpreter.Result {
	return interpreter.Result{Intent: interpreter.IntentHelp, Help: interpreter.HelpCommands}
}

func errorResult(err error) interpreter.Result {
	return interpreter.Result{Intent: interpreter.IntentError, Message: err.Error()}
}

func (uc *implUseCase) handleHelp(ctx context.Context, text string) interpreter.Result {
	return uc.helpResult()
}

func (uc *implUseCase) handleCreate(ctx context.Context, text string) interpreter.Result {
	s := uc.extract(text)
	if !s.ok {
		// Missing date or time is not an error: ask for a complete command.
		return uc.helpResult()
	}

	exists, err := uc.agendaUC.Exists(ctx, s.name, s.date, s.time)
	if err != nil {
		return errorResult(err)
	}
	if exists {
		return interpreter.Result{
			Intent:    interpreter.IntentCreate,
			Duplicate: true,
			Task:      interpreter.TaskRef{Name: s.name, Date: s.date, Time: s.time},
		}
	}

	out, err := uc.agendaUC.Create(ctx, agenda.CreateInput{
		Name:     s.name,
		Date:     s.date,
		Time:     s.time,
		Duration: s.duration,
		Priority: s.priority,
	})
	if err != nil {
		return errorResult(err)
	}

	return interpreter.Result{
		Intent:    interpreter.IntentCreate,
		Task:      out.Task,
		Conflicts: out.Conflicts.Conflicts,
		Total:     &out.Conflicts.Total,
	}
}

func (uc *implUseCase) handleEdit(ctx context.Context, text string) interpreter.Result {
	m := editRe.FindStringSubmatch(text)
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return errorResult(err)
	}

	date := uc.dates.ParseDate(m[2], uc.clock())
	hour, _ := strconv.Atoi(m[3])
	minute, _ := strconv.Atoi(m[4])
	tm := fmt.Sprintf("%02d:%02d", hour, minute)

	task, err := uc.agendaUC.Update(ctx, agenda.UpdateInput{ID: id, Date: &date, Time: &tm})
	if err != nil {
		return errorResult(err)
	}
	return interpreter.Result{Intent: interpreter.IntentEdit, OK: true, Task: task}
}

func (uc *implUseCase) handleDelete(ctx context.Context, text string) interpreter.Result {
	m := deleteRe.FindStringSubmatch(text)
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return errorResult(err)
	}

	if err := uc.agendaUC.Delete(ctx, id); err != nil {
		return errorResult(err)
	}
	return interpreter.Result{Intent: interpreter.IntentDelete, OK: true, ID: id}
}

func (uc *implUseCase) handlePending(ctx context.Context, text string) interpreter.Result {
	tasks, err := uc.agendaUC.Pending(ctx)
	if err != nil {
		return errorResult(err)
	}
	return interpreter.Result{Intent: interpreter.IntentListPending, Data: tasks}
}

func (uc *implUseCase) handleConflicts(ctx context.Context, text string) interpreter.Result {
	report, err := uc.agendaUC.Conflicts(ctx)
	if err != nil {
		return errorResult(err)
	}
	return interpreter.Result{
		Intent:    interpreter.IntentConflicts,
		Conflicts: report.Conflicts,
		Total:     &report.Total,
	}
}
