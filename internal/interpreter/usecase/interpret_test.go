package usecase_test

import (
	"context"
	"testing"
	"time"

	"agenda-assistant/internal/agenda"
	agendaUsecase "agenda-assistant/internal/agenda/usecase"
	"agenda-assistant/internal/agenda/repository/file"
	"agenda-assistant/internal/interpreter"
	"agenda-assistant/internal/interpreter/usecase"
	"agenda-assistant/internal/model"
	"agenda-assistant/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// fixedClock pins "today" to Friday 2025-01-10.
func fixedClock() time.Time {
	return time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
}

type fixture struct {
	interp interpreter.UseCase
	agenda agenda.UseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	repo, err := file.New("", &mockLogger{})
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}
	agendaUC := agendaUsecase.New(&mockLogger{}, repo, fixedClock, nil, "", "UTC")
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating date parser: %v", err)
	}
	return fixture{
		interp: usecase.New(&mockLogger{}, agendaUC, dates, fixedClock),
		agenda: agendaUC,
	}
}

func taskOf(t *testing.T, res interpreter.Result) model.Task {
	t.Helper()
	task, ok := res.Task.(model.Task)
	if !ok {
		t.Fatalf("result task is %T, want model.Task", res.Task)
	}
	return task
}

func TestHelpAndFallback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, text := range []string{"hello", "help", "what can you do", "random gibberish"} {
		res := f.interp.Interpret(ctx, text)
		if res.Intent != interpreter.IntentHelp {
			t.Errorf("Interpret(%q) intent = %q, want help", text, res.Intent)
		}
		if len(res.Help) == 0 {
			t.Errorf("Interpret(%q) returned empty help payload", text)
		}
	}
}

func TestCreateFullCommand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res := f.interp.Interpret(ctx, "schedule meeting tomorrow at 3pm for 60 minutes name Planning")
	if res.Intent != interpreter.IntentCreate {
		t.Fatalf("intent = %q, want create", res.Intent)
	}
	task := taskOf(t, res)
	if task.Name != "Planning" {
		t.Errorf("name = %q, want Planning", task.Name)
	}
	if task.Date != "2025-01-11" {
		t.Errorf("date = %q, want 2025-01-11 (tomorrow)", task.Date)
	}
	if task.Time != "15:00" {
		t.Errorf("time = %q, want 15:00", task.Time)
	}
	if task.Duration != 60 {
		t.Errorf("duration = %d, want 60", task.Duration)
	}
	if res.Total == nil || *res.Total != 0 {
		t.Errorf("conflict total = %v, want 0", res.Total)
	}
}

func TestCreateSlotVariants(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want model.Task
	}{
		{
			name: "24h clock with priority",
			text: "book meeting today 16.30 priority 2",
			want: model.Task{Name: "Meeting", Date: "2025-01-10", Time: "16:30", Duration: 30, Priority: 2},
		},
		{
			name: "ISO date and hour unit",
			text: "schedule 2025-03-08 09:00 for 2 hours about quarterly review",
			want: model.Task{Name: "Quarterly review", Date: "2025-03-08", Time: "09:00", Duration: 120, Priority: 3},
		},
		{
			name: "Partial day-month date",
			text: "create appointment 5-3 at 10:00",
			want: model.Task{Name: "Meeting", Date: "2025-03-05", Time: "10:00", Duration: 30, Priority: 3},
		},
		{
			name: "Literal one hour",
			text: "schedule meeting tomorrow 9:00 for one hour",
			want: model.Task{Name: "Meeting", Date: "2025-01-11", Time: "09:00", Duration: 60, Priority: 3},
		},
		{
			name: "12am wraps to midnight",
			text: "book meeting tomorrow 12am name night watch",
			want: model.Task{Name: "Night watch", Date: "2025-01-11", Time: "00:00", Duration: 30, Priority: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res := f.interp.Interpret(ctx, tt.text)
			if res.Intent != interpreter.IntentCreate {
				t.Fatalf("intent = %q, want create", res.Intent)
			}
			task := taskOf(t, res)
			if task.Name != tt.want.Name || task.Date != tt.want.Date || task.Time != tt.want.Time ||
				task.Duration != tt.want.Duration || task.Priority != tt.want.Priority {
				t.Errorf("task = %+v, want %+v", task, tt.want)
			}
		})
	}
}

func TestCreateIncompleteReturnsHelp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res := f.interp.Interpret(ctx, "schedule something")
	if res.Intent != interpreter.IntentHelp {
		t.Fatalf("intent = %q, want help", res.Intent)
	}

	tasks, _ := f.agenda.List(ctx)
	if len(tasks) != 0 {
		t.Errorf("incomplete create stored a task: %+v", tasks)
	}
}

func TestCreateDuplicateSuppressed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := f.interp.Interpret(ctx, "schedule meeting tomorrow 15:00 name Planning")
	if first.Intent != interpreter.IntentCreate || first.Duplicate {
		t.Fatalf("first create = %+v", first)
	}

	second := f.interp.Interpret(ctx, "schedule meeting tomorrow 15:00 name Planning")
	if second.Intent != interpreter.IntentCreate || !second.Duplicate {
		t.Fatalf("second create = %+v, want duplicate", second)
	}
	ref, ok := second.Task.(interpreter.TaskRef)
	if !ok || ref.Name != "Planning" {
		t.Errorf("duplicate task echo = %+v", second.Task)
	}

	tasks, _ := f.agenda.List(ctx)
	if len(tasks) != 1 {
		t.Errorf("store holds %d tasks, want 1", len(tasks))
	}
}

func TestCreateReportsConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.interp.Interpret(ctx, "schedule meeting today 9:00 name Standup")
	res := f.interp.Interpret(ctx, "schedule meeting today 9:15 name Sync")

	if res.Total == nil || *res.Total != 1 {
		t.Fatalf("conflict total = %v, want 1", res.Total)
	}
	if len(res.Conflicts) != 1 {
		t.Fatalf("conflicts = %v, want one pair", res.Conflicts)
	}
}

func TestEditCommand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created := f.interp.Interpret(ctx, "schedule meeting today 9:00 name Standup")
	id := taskOf(t, created).ID

	res := f.interp.Interpret(ctx, "edit 1 to tomorrow 16:00")
	if res.Intent != interpreter.IntentEdit || !res.OK {
		t.Fatalf("edit result = %+v", res)
	}
	task := taskOf(t, res)
	if task.ID != id || task.Date != "2025-01-11" || task.Time != "16:00" {
		t.Errorf("edited task = %+v", task)
	}
	if task.Name != "Standup" {
		t.Errorf("edit must not touch name, got %q", task.Name)
	}

	// "move" with a dotted time and no "to"
	res = f.interp.Interpret(ctx, "move 1 today 8.30")
	if res.Intent != interpreter.IntentEdit || !res.OK {
		t.Fatalf("move result = %+v", res)
	}
	if task := taskOf(t, res); task.Time != "08:30" || task.Date != "2025-01-10" {
		t.Errorf("moved task = %+v", task)
	}
}

func TestDeleteCommand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.interp.Interpret(ctx, "schedule meeting today 9:00 name Standup")

	res := f.interp.Interpret(ctx, "delete 1")
	if res.Intent != interpreter.IntentDelete || !res.OK || res.ID != 1 {
		t.Fatalf("delete result = %+v", res)
	}

	tasks, _ := f.agenda.List(ctx)
	if len(tasks) != 0 {
		t.Errorf("store holds %d tasks after delete, want 0", len(tasks))
	}
}

func TestDeleteMissingBecomesErrorResult(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res := f.interp.Interpret(ctx, "delete 999")
	if res.Intent != interpreter.IntentError {
		t.Fatalf("intent = %q, want error", res.Intent)
	}
	if res.Message == "" {
		t.Errorf("error result carries no message")
	}
}

func TestPendingCommand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.interp.Interpret(ctx, "schedule meeting today 9:00 name Due")
	f.interp.Interpret(ctx, "schedule meeting 2025-06-01 9:00 name Future")

	res := f.interp.Interpret(ctx, "what do i have pending?")
	if res.Intent != interpreter.IntentListPending {
		t.Fatalf("intent = %q, want list_pending", res.Intent)
	}
	if len(res.Data) != 1 || res.Data[0].Name != "Due" {
		t.Errorf("pending data = %+v", res.Data)
	}
}

func TestConflictsCommand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res := f.interp.Interpret(ctx, "any conflicts?")
	if res.Intent != interpreter.IntentConflicts {
		t.Fatalf("intent = %q, want conflicts", res.Intent)
	}
	if res.Total == nil || *res.Total != 0 {
		t.Errorf("total = %v, want 0", res.Total)
	}

	f.interp.Interpret(ctx, "schedule meeting today 9:00 name A")
	f.interp.Interpret(ctx, "schedule meeting today 9:10 name B")

	res = f.interp.Interpret(ctx, "show overlaps")
	if res.Total == nil || *res.Total != 1 {
		t.Errorf("total = %v, want 1", res.Total)
	}
}

func TestRuleOrderHelpBeatsCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// Contains both a help keyword and a create verb; the help rule is first.
	res := f.interp.Interpret(ctx, "help me schedule a meeting")
	if res.Intent != interpreter.IntentHelp {
		t.Errorf("intent = %q, want help (rule order)", res.Intent)
	}
}
