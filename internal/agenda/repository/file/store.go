// Package file implements the task repository as an in-memory set with a JSON
// snapshot on disk. The snapshot is rewritten after every mutation, so a crash
// never loses an acknowledged write.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"agenda-assistant/internal/agenda/repository"
	"agenda-assistant/internal/model"
	"agenda-assistant/pkg/log"
)

const logTimestampFormat = "2006-01-02 15:04"

// Store is the file-backed task repository. A single mutex serializes
// mutations; that is the one concurrency boundary the agenda needs.
type Store struct {
	l    log.Logger
	path string // empty disables persistence (tests)

	mu       sync.Mutex
	tasks    []model.Task // insertion order
	nextID   int
	revision uint64
}

var _ repository.Repository = (*Store)(nil)

// New loads the snapshot at path, or starts empty when the file does not
// exist. The ID counter starts at max(loaded ids)+1 so IDs survive restarts.
func New(path string, l log.Logger) (*Store, error) {
	s := &Store{
		l:      l,
		path:   path,
		tasks:  []model.Task{},
		nextID: 1,
	}

	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read task snapshot %q: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.tasks); err != nil {
		return nil, fmt.Errorf("failed to parse task snapshot %q: %w", path, err)
	}

	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}

	return s, nil
}

func (s *Store) Create(ctx context.Context, opts repository.CreateOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := model.Task{
		ID:       s.nextID,
		Name:     opts.Name,
		Date:     opts.Date,
		Time:     opts.Time,
		Duration: opts.Duration,
		Priority: opts.Priority,
		Status:   model.StatusScheduled,
		Log:      []model.LogEntry{},
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	s.revision++

	if err := s.save(ctx); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (s *Store) List(ctx context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(), nil
}

func (s *Store) Get(ctx context.Context, id int) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return s.tasks[idx], nil
}

func (s *Store) Update(ctx context.Context, opts repository.UpdateOptions) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(opts.ID)
	if idx < 0 {
		return model.Task{}, repository.ErrTaskNotFound
	}

	task := &s.tasks[idx]
	if opts.Name != nil {
		task.Name = *opts.Name
	}
	if opts.Date != nil {
		task.Date = *opts.Date
	}
	if opts.Time != nil {
		task.Time = *opts.Time
	}
	if opts.Duration != nil {
		task.Duration = *opts.Duration
	}
	if opts.Priority != nil {
		task.Priority = *opts.Priority
	}

	action := "edit"
	if opts.Status != nil {
		task.Status = *opts.Status
		action = string(*opts.Status)
	}

	comment := ""
	if opts.Comment != nil {
		comment = *opts.Comment
	}

	task.Log = append(task.Log, model.LogEntry{
		Timestamp: time.Now().Format(logTimestampFormat),
		Action:    action,
		Comment:   comment,
	})
	s.revision++

	if err := s.save(ctx); err != nil {
		return model.Task{}, err
	}
	return *task, nil
}

func (s *Store) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return repository.ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.revision++
	return s.save(ctx)
}

func (s *Store) Exists(ctx context.Context, name, date, tm string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	date = strings.TrimSpace(date)
	tm = strings.TrimSpace(tm)

	for _, t := range s.tasks {
		if strings.EqualFold(strings.TrimSpace(t.Name), name) &&
			strings.TrimSpace(t.Date) == date &&
			strings.TrimSpace(t.Time) == tm {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Pending(ctx context.Context, asOf string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := []model.Task{}
	for _, t := range s.sortedLocked() {
		if t.Date > asOf {
			continue
		}
		if t.Status == model.StatusScheduled || t.Status == model.StatusInProgress {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// indexLocked returns the position of id in s.tasks, or -1.
func (s *Store) indexLocked(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// sortedLocked copies the live set ordered by (date, time); the stable sort
// preserves insertion order for ties.
func (s *Store) sortedLocked() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// save rewrites the JSON snapshot. Called with the mutex held.
func (s *Store) save(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode task snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write task snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace task snapshot: %w", err)
	}

	s.l.Debugf(ctx, "saved %d tasks to %s", len(s.tasks), s.path)
	return nil
}
