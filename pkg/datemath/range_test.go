package datemath_test

import (
	"strings"
	"testing"
	"time"

	"intent-engine/pkg/datemath"
)

func TestExpandYear(t *testing.T) {
	tests := map[int]int{0: 2000, 23: 2023, 49: 2049, 50: 1950, 99: 1999, 2024: 2024}
	for in, want := range tests {
		if got := datemath.ExpandYear(in); got != want {
			t.Errorf("ExpandYear(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFindDates(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name string
		text string
		want []time.Time
	}{
		{"iso", "orders on 2023-01-05", []time.Time{day(2023, 1, 5)}},
		{"slash", "orders on 05/01/2023", []time.Time{day(2023, 1, 5)}},
		{"dash", "05-01-2023", []time.Time{day(2023, 1, 5)}},
		{"dot two digit year", "5.1.23", []time.Time{day(2023, 1, 5)}},
		{"old two digit year", "31/12/99", []time.Time{day(1999, 12, 31)}},
		{"invalid calendar date", "31/02/2023", nil},
		{"mixed separators", "01/02-2023", nil},
		{"text order", "2023-03-01 and 01/01/2023", []time.Time{day(2023, 3, 1), day(2023, 1, 1)}},
		{"none", "order 456 for 12.50", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.FindDates(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("FindDates(%q) found %d dates, want %d", tt.text, len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Time.Equal(tt.want[i]) {
					t.Errorf("date %d = %v, want %v", i, got[i].Time, tt.want[i])
				}
			}
		})
	}
}

func TestStripDates(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	got := parser.StripDates("over 100 since 2023-01-01")
	want := "over 100 since " + strings.Repeat(" ", len("2023-01-01"))
	if got != want {
		t.Errorf("StripDates() = %q, want %q", got, want)
	}
}

func TestParseRange(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC) // Wednesday
	sod := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	eod := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 23, 59, 59, 999999000, time.UTC) }

	tests := []struct {
		name   string
		text   string
		start  time.Time
		end    time.Time
		period string
		ok     bool
	}{
		{"from to", "show orders from 2023-01-01 to 2023-01-31", sod(2023, 1, 1), eod(2023, 1, 31), "", true},
		{"hebrew from to", "הזמנות מ-01/02/2023 עד 10/02/2023", sod(2023, 2, 1), eod(2023, 2, 10), "", true},
		{"reversed from to", "between 2023-02-01 and 2023-01-01", sod(2023, 1, 1), eod(2023, 2, 1), "", true},
		{"two lowest", "2023-03-01 2023-01-01 2023-02-01", sod(2023, 1, 1), eod(2023, 2, 1), "", true},
		{"single date ends now", "orders since 01/05/2024", sod(2024, 5, 1), now, "", true},
		{"today", "sales today", sod(2024, 5, 15), eod(2024, 5, 15), "today", true},
		{"yesterday hebrew", "מכירות אתמול", sod(2024, 5, 14), eod(2024, 5, 14), "yesterday", true},
		{"this week", "orders this week", sod(2024, 5, 13), eod(2024, 5, 15), "this_week", true},
		{"this month hebrew", "דוח מכירות החודש", sod(2024, 5, 1), eod(2024, 5, 15), "this_month", true},
		{"last week", "orders last week", sod(2024, 5, 6), eod(2024, 5, 12), "last_week", true},
		{"last month", "revenue last month", sod(2024, 4, 1), eod(2024, 4, 30), "last_month", true},
		{"last month hebrew", "הכנסות בחודש שעבר", sod(2024, 4, 1), eod(2024, 4, 30), "last_month", true},
		{"last n days", "orders in the last 7 days", sod(2024, 5, 8), eod(2024, 5, 15), "last_7_days", true},
		{"last n days hebrew", "הזמנות ב-30 הימים האחרונים", sod(2024, 4, 15), eod(2024, 5, 15), "last_30_days", true},
		{"days ago", "customers from 3 days ago", sod(2024, 5, 12), now, "", true},
		{"nothing", "show all orders", time.Time{}, time.Time{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseRange(tt.text, now)
			if ok != tt.ok {
				t.Fatalf("ParseRange(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if !ok {
				return
			}
			if !got.Start.Equal(tt.start) || !got.End.Equal(tt.end) {
				t.Errorf("ParseRange(%q) = [%v, %v], want [%v, %v]", tt.text, got.Start, got.End, tt.start, tt.end)
			}
			if got.Period != tt.period {
				t.Errorf("period = %q, want %q", got.Period, tt.period)
			}
		})
	}
}
