package interpreter

import (
	"agenda-assistant/internal/agenda/conflict"
	"agenda-assistant/internal/model"
)

// Intents the interpreter can resolve a text to.
const (
	IntentHelp        = "help"
	IntentCreate      = "create"
	IntentEdit        = "edit"
	IntentDelete      = "delete"
	IntentListPending = "list_pending"
	IntentConflicts   = "conflicts"
	IntentError       = "error"
)

// TaskRef is the partial task echo returned when a create is suppressed as a
// duplicate.
type TaskRef struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// Result is the structured outcome of interpreting one line of text. Exactly
// one intent is set; the other fields are populated per intent:
//
//	help          Help
//	create        Task (model.Task) + Conflicts/Total, or Duplicate + Task (TaskRef)
//	edit          OK + Task (model.Task)
//	delete        OK + ID
//	list_pending  Data
//	conflicts     Conflicts + Total
//	error         Message
type Result struct {
	Intent    string          `json:"intent"`
	Help      []string        `json:"help,omitempty"`
	Task      any             `json:"task,omitempty"`
	Duplicate bool            `json:"duplicate,omitempty"`
	Conflicts []conflict.Pair `json:"conflicts,omitempty"`
	Total     *int            `json:"total,omitempty"`
	Data      []model.Task    `json:"data,omitempty"`
	ID        int             `json:"id,omitempty"`
	OK        bool            `json:"ok,omitempty"`
	Message   string          `json:"message,omitempty"`
}
