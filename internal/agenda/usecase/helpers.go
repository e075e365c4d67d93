package usecase

import (
	"strings"
	"time"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/internal/model"
)

// canonicalDate validates and normalizes a "YYYY-MM-DD" value.
func canonicalDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", agenda.ErrMissingDate
	}
	t, err := time.Parse(model.DateFormat, date)
	if err != nil {
		return "", agenda.ErrInvalidDate
	}
	return t.Format(model.DateFormat), nil
}

// canonicalTime validates and normalizes an "HH:MM" value.
func canonicalTime(tm string) (string, error) {
	tm = strings.TrimSpace(tm)
	if tm == "" {
		return "", agenda.ErrMissingTime
	}
	t, err := time.Parse(model.TimeFormat, tm)
	if err != nil {
		return "", agenda.ErrInvalidTime
	}
	return t.Format(model.TimeFormat), nil
}

func validDuration(d int) bool { return d > 0 }

func validPriority(p int) bool { return p >= 1 && p <= 5 }
