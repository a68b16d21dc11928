package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownExpression is returned when a relative expression is not recognized.
var ErrUnknownExpression = errors.New("datemath: unknown relative expression")

// Parser converts relative and absolute date expressions to absolute
// time.Time values in a fixed timezone.
type Parser struct {
	location  *time.Location
	weekStart time.Weekday
}

// Option configures a Parser.
type Option func(*Parser)

// WithWeekStart sets the first day of the week used by "this week" and
// "last week". Defaults to Monday.
func WithWeekStart(d time.Weekday) Option {
	return func(p *Parser) { p.weekStart = d }
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Jerusalem"
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	p := &Parser{location: loc, weekStart: time.Monday}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location { return p.location }

var agoRe = regexp.MustCompile(`^(\d{1,3}) (day|days|week|weeks|month|months) ago$|^לפני (\d{1,3}) (יום|ימים|שבוע|שבועות|חודש|חודשים)$`)

// Parse converts a single-day relative expression ("today", "yesterday",
// "3 days ago", "אתמול") to the start of that day. The baseTime is used as
// the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today", "היום":
		return p.StartOfDay(baseTime), nil
	case "tomorrow", "מחר":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday", "אתמול":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if m := agoRe.FindStringSubmatch(relative); m != nil {
		num, unit := m[1], m[2]
		if num == "" {
			num, unit = m[3], m[4]
		}
		amount, _ := strconv.Atoi(num)
		return p.shift(baseTime, -amount, unit)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownExpression, relative)
}

func (p *Parser) shift(baseTime time.Time, amount int, unit string) (time.Time, error) {
	switch unit {
	case "day", "days", "יום", "ימים":
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case "week", "weeks", "שבוע", "שבועות":
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case "month", "months", "חודש", "חודשים":
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59.999999 of the day containing t.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).AddDate(0, 0, 1).Add(-time.Microsecond)
}

// StartOfWeek returns the start of the week containing t.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	sod := p.StartOfDay(t)
	back := (int(sod.Weekday()) - int(p.weekStart) + 7) % 7
	return sod.AddDate(0, 0, -back)
}

// StartOfMonth returns the first day of the month containing t.
func (p *Parser) StartOfMonth(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location)
}

// ParseWeekday maps "monday".."sunday" to a time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
	d, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return time.Monday, fmt.Errorf("unknown weekday: %q", s)
	}
	return d, nil
}
