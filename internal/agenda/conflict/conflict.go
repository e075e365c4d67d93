// Package conflict identifies overlapping task pairs. Detection is pure: it
// takes a task list and produces a report, with no side effects.
package conflict

import "agenda-assistant/internal/model"

// Pair is one conflicting task pair. A precedes B in the order the tasks were
// given, which for store listings is (date, time) ascending.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Report is the full conflict listing for a task set.
type Report struct {
	Conflicts []Pair `json:"conflicts"`
	Total     int    `json:"total"`
}

// Detect reports every pair of tasks whose half-open intervals
// [start, start+duration) intersect. Touching endpoints do not conflict.
// Each conflicting pair appears exactly once. Tasks whose date or time cannot
// be parsed are skipped; the store never holds such a task, so this is purely
// defensive.
//
// The scan is quadratic, which is fine at personal-agenda scale.
func Detect(tasks []model.Task) Report {
	report := Report{Conflicts: []Pair{}}

	type entry struct {
		id       int
		interval model.Interval
	}
	entries := make([]entry, 0, len(tasks))
	for _, t := range tasks {
		iv, ok := t.Interval()
		if !ok {
			continue
		}
		entries = append(entries, entry{id: t.ID, interval: iv})
	}

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].interval.Overlaps(entries[j].interval) {
				report.Conflicts = append(report.Conflicts, Pair{A: entries[i].id, B: entries[j].id})
			}
		}
	}

	report.Total = len(report.Conflicts)
	return report
}
