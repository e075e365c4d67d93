package model

import "time"

// Canonical storage formats for task date and time fields.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusScheduled       Status = "Scheduled"
	StatusInProgress      Status = "InProgress"
	StatusDone            Status = "Done"
	StatusNeedsReschedule Status = "NeedsReschedule"
)

// AllStatuses lists every valid status, in lifecycle order.
var AllStatuses = []Status{StatusScheduled, StatusInProgress, StatusDone, StatusNeedsReschedule}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusDone, StatusNeedsReschedule:
		return true
	}
	return false
}

// LogEntry is one append-only audit record on a task.
type LogEntry struct {
	Timestamp string `json:"timestamp"` // "2006-01-02 15:04"
	Action    string `json:"action"`
	Comment   string `json:"comment"`
}

// Task is a single schedulable unit of work.
// IDs are assigned by the repository, are unique across the store's lifetime
// and are never reused, even after deletion.
type Task struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Date     string     `json:"date"`     // canonical "YYYY-MM-DD"
	Time     string     `json:"time"`     // canonical "HH:MM", 24-hour
	Duration int        `json:"duration"` // minutes, > 0
	Priority int        `json:"priority"` // 1..5
	Status   Status     `json:"status"`
	Log      []LogEntry `json:"log"`
}

// Interval is the half-open time range [Start, End) a task occupies.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (a.End == b.Start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Interval derives the task's occupied time range from its date, time and
// duration. The boolean is false when date or time is not in canonical form.
func (t Task) Interval() (Interval, bool) {
	start, err := time.ParseInLocation(DateFormat+" "+TimeFormat, t.Date+" "+t.Time, time.Local)
	if err != nil {
		return Interval{}, false
	}
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(t.Duration) * time.Minute),
	}, true
}
