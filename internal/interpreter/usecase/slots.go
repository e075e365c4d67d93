package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"agenda-assistant/internal/agenda"
)

// Slot patterns, applied to lower-cased trimmed input.
var (
	clockRe    = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})\s*(am|pm)?\b`)
	meridiemRe = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	dateWordRe = regexp.MustCompile(`\b(today|tomorrow)\b`)
	isoDateRe  = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	// Bare day numbers are indistinguishable from durations and priorities,
	// so numeric dates need at least day-month.
	numDateRe  = regexp.MustCompile(`\b\d{1,2}-\d{1,2}(?:-\d{2,4})?\b`)
	durationRe = regexp.MustCompile(`\b(\d+)\s*(minutes|minute|mins|min|hours|hour)\b`)
	oneHourRe  = regexp.MustCompile(`\bone hour\b`)
	priorityRe = regexp.MustCompile(`\bpriority\s+(\d)\b`)
)

// nameMarkers are tried in order; "for" comes last because it also introduces
// durations ("for 60 minutes").
var nameMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\bname\s+(.+)$`),
	regexp.MustCompile(`\bsubject\s+(.+)$`),
	regexp.MustCompile(`\babout\s+(.+)$`),
	regexp.MustCompile(`\bfor\s+(.+)$`),
}

// slots is the structured field set extracted from a create command.
type slots struct {
	name     string
	date     string // canonical "YYYY-MM-DD", "" when missing
	time     string // canonical "HH:MM", "" when missing
	duration int
	priority int
	ok       bool // both date and time resolved
}

// extract pulls every slot it can find out of text. Only date and time are
// required; the rest fall back to the agenda defaults.
func (uc *implUseCase) extract(text string) slots {
	s := slots{
		name:     agenda.DefaultName,
		duration: agenda.DefaultDuration,
		priority: agenda.DefaultPriority,
	}

	s.date = uc.extractDate(text)
	s.time = extractTime(text)

	if m := durationRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "hour") {
			n *= 60
		}
		if n > 0 {
			s.duration = n
		}
	} else if oneHourRe.MatchString(text) {
		s.duration = 60
	}

	if m := priorityRe.FindStringSubmatch(text); m != nil {
		if p, err := strconv.Atoi(m[1]); err == nil && p >= 1 && p <= 5 {
			s.priority = p
		}
	}

	if name := extractName(text); name != "" {
		s.name = name
	}

	s.ok = s.date != "" && s.time != ""
	return s
}

// extractDate resolves the first date token found: a keyword, a full ISO
// date, or a partial day-month(-year) number.
func (uc *implUseCase) extractDate(text string) string {
	if m := dateWordRe.FindString(text); m != "" {
		return uc.dates.ParseDate(m, uc.clock())
	}
	if m := isoDateRe.FindString(text); m != "" {
		return uc.dates.ParseDate(m, uc.clock())
	}
	if m := numDateRe.FindString(text); m != "" {
		return uc.dates.ParseDate(m, uc.clock())
	}
	return ""
}

// extractTime finds a wall-clock token: "H:MM"/"H.MM" with optional am/pm, or
// a bare hour with a required meridiem ("3pm"). 12-hour times convert to
// 24-hour: pm adds 12 below noon, 12am becomes 00.
func extractTime(text string) string {
	for _, m := range clockRe.FindAllStringSubmatch(text, -1) {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if tm, ok := toWallClock(hour, minute, m[3]); ok {
			return tm
		}
	}
	for _, m := range meridiemRe.FindAllStringSubmatch(text, -1) {
		hour, _ := strconv.Atoi(m[1])
		if tm, ok := toWallClock(hour, 0, m[2]); ok {
			return tm
		}
	}
	return ""
}

func toWallClock(hour, minute int, meridiem string) (string, bool) {
	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// extractName takes the text after the first name marker, strips any slot
// tokens that leaked into it, and capitalizes the remainder.
func extractName(text string) string {
	for _, marker := range nameMarkers {
		m := marker.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if name := scrubName(m[1]); name != "" {
			return name
		}
	}
	return ""
}

func scrubName(raw string) string {
	for _, re := range []*regexp.Regexp{clockRe, meridiemRe, dateWordRe, isoDateRe, numDateRe, durationRe, oneHourRe, priorityRe} {
		raw = re.ReplaceAllString(raw, " ")
	}
	raw = strings.Join(strings.Fields(raw), " ")
	return capitalize(raw)
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
