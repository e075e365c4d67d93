package usecase

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/agenda/conflict"
	"agenda-assistant/internal/agenda/repository"
	"agenda-assistant/pkg/gcalendar"
	"agenda-assistant/pkg/log"
)

// conflictCacheSize bounds the revision-keyed conflict report cache. Reports
// are tiny; a handful of entries covers interleaved readers.
const conflictCacheSize = 8

// CalendarMirror is the slice of the Google Calendar client the agenda uses.
// Nil means mirroring is disabled.
type CalendarMirror interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of agenda.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	clock      func() time.Time
	cache      *lru.Cache[uint64, conflict.Report]
	calendar   CalendarMirror
	calendarID string
	timezone   string
}

var _ agenda.UseCase = (*implUseCase)(nil)

// New creates a new agenda UseCase implementation. clock defaults to time.Now
// when nil; calendar may be nil to disable mirroring.
func New(l log.Logger, repo repository.Repository, clock func() time.Time, calendar CalendarMirror, calendarID, timezone string) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	cache, _ := lru.New[uint64, conflict.Report](conflictCacheSize)
	return &implUseCase{
		l:          l,
		repo:       repo,
		clock:      clock,
		cache:      cache,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
