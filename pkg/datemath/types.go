package datemath

import "time"

// Range is a resolved date interval. Start is a start-of-day boundary; End
// is an end-of-day boundary or, for open ranges, the reference time.
type Range struct {
	Start time.Time
	End   time.Time
	// Period names the relative phrase the range came from ("today",
	// "last_month", "last_7_days"). Empty for explicit dates.
	Period string
}

// DateMatch is an absolute date found in free text.
type DateMatch struct {
	Time  time.Time
	Begin int // byte offsets into the searched text
	End   int
}
