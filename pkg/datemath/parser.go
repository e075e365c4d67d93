package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	partialDateRe = regexp.MustCompile(`^(\d{1,2})(?:-(\d{1,2}))?(?:-(\d{2,4}))?$`)
)

// Parser resolves date keywords and partial dates to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Bogota"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves a date token to the start of the day it names.
// The baseTime is the reference point (usually time.Now()).
//
// Accepted forms:
//   - "today" / "tomorrow"
//   - full ISO "YYYY-MM-DD", passed through unchanged
//   - partial "D", "D-M" or "D-M-Y" (1-2 digit day and month, 2-4 digit
//     year); missing month/year are filled from baseTime
//
// A token that names an impossible calendar date, or anything unrecognized,
// falls back to baseTime's day rather than failing.
func (p *Parser) Parse(token string, baseTime time.Time) time.Time {
	token = strings.ToLower(strings.TrimSpace(token))

	switch token {
	case "today":
		return p.startOfDay(baseTime)
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1))
	}

	if m := isoDateRe.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if t, ok := p.calendarDate(year, month, day); ok {
			return t
		}
		return p.startOfDay(baseTime)
	}

	if m := partialDateRe.FindStringSubmatch(token); m != nil {
		base := baseTime.In(p.location)
		day, _ := strconv.Atoi(m[1])
		month := int(base.Month())
		year := base.Year()
		if m[2] != "" {
			month, _ = strconv.Atoi(m[2])
		}
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		if t, ok := p.calendarDate(year, month, day); ok {
			return t
		}
	}

	return p.startOfDay(baseTime)
}

// ParseDate is Parse rendered in the canonical "YYYY-MM-DD" storage form.
func (p *Parser) ParseDate(token string, baseTime time.Time) string {
	return p.Parse(token, baseTime).Format("2006-01-02")
}

// calendarDate builds the start of day for a (year, month, day) triple and
// reports whether the triple names a real calendar date. time.Date normalizes
// overflow (Feb 31 -> Mar 3), so a round-trip mismatch means invalid input.
func (p *Parser) calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
