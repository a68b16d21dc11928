package datemath

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	localDateRe = regexp.MustCompile(`\b(\d{1,2})([/.-])(\d{1,2})([/.-])(\d{4}|\d{2})\b`)

	rangeMarkerRe = regexp.MustCompile(`\b(?:from|between|since|to|until|till|through)\b|(?:^|\s)(?:מתאריך|החל מ|עד|ועד|בין)(?:\s|$)|(?:^|\s)מ-?\d`)

	lastNDaysRe = regexp.MustCompile(`\b(?:last|past|previous)\s+(\d{1,3})\s+days?\b|(\d{1,3})\s+(?:ה)?ימים\s+(?:ה)?אחרונים`)
	agoPhraseRe = regexp.MustCompile(`\b\d{1,3}\s+(?:days?|weeks?|months?)\s+ago\b|לפני\s+\d{1,3}\s+(?:יום|ימים|שבוע|שבועות|חודש|חודשים)`)
	lastWeekRe  = regexp.MustCompile(`\b(?:last|previous|past)\s+week\b|שבוע\s+שעבר|השבוע\s+הקודם`)
	lastMonthRe = regexp.MustCompile(`\b(?:last|previous|past)\s+month\b|חודש\s+שעבר|החודש\s+הקודם`)
	thisWeekRe  = regexp.MustCompile(`\bthis\s+week\b|השבוע`)
	thisMonthRe = regexp.MustCompile(`\bthis\s+month\b|החודש`)
	todayRe     = regexp.MustCompile(`\btoday\b|היום`)
	yesterdayRe = regexp.MustCompile(`\byesterday\b|אתמול`)
)

// ExpandYear maps a two-digit year to a full year: below 50 is 2000s,
// otherwise 1900s. Four-digit years are returned unchanged.
func ExpandYear(y int) int {
	switch {
	case y >= 100:
		return y
	case y < 50:
		return 2000 + y
	default:
		return 1900 + y
	}
}

// FindDates returns every absolute date in text, in order of appearance.
// ISO dates (YYYY-MM-DD) and day-first local forms (DD/MM/YYYY, DD-MM-YYYY,
// DD.MM.YYYY, two-digit years allowed) are recognized; impossible calendar
// dates are skipped.
func (p *Parser) FindDates(text string) []DateMatch {
	var out []DateMatch
	masked := []byte(text)

	for _, m := range isoDateRe.FindAllStringSubmatchIndex(text, -1) {
		y, _ := strconv.Atoi(text[m[2]:m[3]])
		mo, _ := strconv.Atoi(text[m[4]:m[5]])
		d, _ := strconv.Atoi(text[m[6]:m[7]])
		for i := m[0]; i < m[1]; i++ {
			masked[i] = ' '
		}
		if t, ok := p.date(y, mo, d); ok {
			out = append(out, DateMatch{Time: t, Begin: m[0], End: m[1]})
		}
	}

	rest := string(masked)
	for _, m := range localDateRe.FindAllStringSubmatchIndex(rest, -1) {
		// Separators must agree: 01/02-2023 is not a date.
		if rest[m[4]:m[5]] != rest[m[8]:m[9]] {
			continue
		}
		d, _ := strconv.Atoi(rest[m[2]:m[3]])
		mo, _ := strconv.Atoi(rest[m[6]:m[7]])
		y, _ := strconv.Atoi(rest[m[10]:m[11]])
		if t, ok := p.date(ExpandYear(y), mo, d); ok {
			out = append(out, DateMatch{Time: t, Begin: m[0], End: m[1]})
		}
	}

	slices.SortFunc(out, func(a, b DateMatch) int { return a.Begin - b.Begin })
	return out
}

// StripDates blanks every absolute date in text so later numeric scans do
// not pick up its digits.
func (p *Parser) StripDates(text string) string {
	b := []byte(text)
	for _, m := range p.FindDates(text) {
		for i := m.Begin; i < m.End; i++ {
			b[i] = ' '
		}
	}
	return string(b)
}

func (p *Parser) date(y, mo, d int) (time.Time, bool) {
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, p.location)
	if t.Day() != d || t.Month() != time.Month(mo) {
		return time.Time{}, false
	}
	return t, true
}

// ParseRange resolves the date range mentioned in text relative to now.
// Explicit dates take precedence over relative phrases:
//   - two or more dates with from/to phrasing: first two in text order;
//   - two or more dates without phrasing: the two lowest after sorting;
//   - a single date: from that day until now.
//
// Relative phrases resolve to whole-day boundaries. ok is false when
// nothing date-like is found.
func (p *Parser) ParseRange(text string, now time.Time) (Range, bool) {
	lower := strings.ToLower(text)
	now = now.In(p.location)

	if dates := p.FindDates(lower); len(dates) > 0 {
		return p.explicitRange(lower, dates, now), true
	}
	return p.relativeRange(lower, now)
}

func (p *Parser) explicitRange(lower string, dates []DateMatch, now time.Time) Range {
	if len(dates) == 1 {
		return Range{Start: p.StartOfDay(dates[0].Time), End: now}
	}

	var start, end time.Time
	if rangeMarkerRe.MatchString(lower) {
		start, end = dates[0].Time, dates[1].Time
	} else {
		times := make([]time.Time, len(dates))
		for i, d := range dates {
			times[i] = d.Time
		}
		slices.SortFunc(times, func(a, b time.Time) int { return a.Compare(b) })
		start, end = times[0], times[1]
	}
	if end.Before(start) {
		start, end = end, start
	}
	return Range{Start: p.StartOfDay(start), End: p.EndOfDay(end)}
}

func (p *Parser) relativeRange(lower string, now time.Time) (Range, bool) {
	today := p.StartOfDay(now)

	if m := lastNDaysRe.FindStringSubmatch(lower); m != nil {
		num := m[1]
		if num == "" {
			num = m[2]
		}
		n, _ := strconv.Atoi(num)
		if n > 0 {
			return Range{
				Start:  today.AddDate(0, 0, -n),
				End:    p.EndOfDay(now),
				Period: "last_" + num + "_days",
			}, true
		}
	}

	if m := agoPhraseRe.FindString(lower); m != "" {
		if start, err := p.Parse(m, now); err == nil {
			return Range{Start: start, End: now}, true
		}
	}

	switch {
	case lastWeekRe.MatchString(lower):
		thisWeek := p.StartOfWeek(now)
		return Range{
			Start:  thisWeek.AddDate(0, 0, -7),
			End:    p.EndOfDay(thisWeek.AddDate(0, 0, -1)),
			Period: "last_week",
		}, true
	case lastMonthRe.MatchString(lower):
		thisMonth := p.StartOfMonth(now)
		return Range{
			Start:  thisMonth.AddDate(0, -1, 0),
			End:    p.EndOfDay(thisMonth.AddDate(0, 0, -1)),
			Period: "last_month",
		}, true
	case thisWeekRe.MatchString(lower):
		return Range{Start: p.StartOfWeek(now), End: p.EndOfDay(now), Period: "this_week"}, true
	case thisMonthRe.MatchString(lower):
		return Range{Start: p.StartOfMonth(now), End: p.EndOfDay(now), Period: "this_month"}, true
	case yesterdayRe.MatchString(lower):
		start, _ := p.Parse("yesterday", now)
		return Range{Start: start, End: p.EndOfDay(start), Period: "yesterday"}, true
	case todayRe.MatchString(lower):
		start, _ := p.Parse("today", now)
		return Range{Start: start, End: p.EndOfDay(start), Period: "today"}, true
	}

	return Range{}, false
}
