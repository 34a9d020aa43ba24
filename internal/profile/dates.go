package profile

import (
	"math/rand/v2"
	"time"
)

const day = 24 * time.Hour

// DateWindow bounds date-range synthesis.
type DateWindow struct {
	MinDaysBack        int     // start is at least this many days ago
	MaxYearsBack       int     // start is at most this many years ago
	OngoingProbability float64 // chance the range has no end
	MinDurationDays    int
	MaxDurationDays    int
}

// DefaultDateWindow is used for work experience.
var DefaultDateWindow = DateWindow{
	MinDaysBack:        180,
	MaxYearsBack:       8,
	OngoingProbability: 0.30,
	MinDurationDays:    180,
	MaxDurationDays:    1000,
}

// EducationDateWindow reaches further back than DefaultDateWindow.
var EducationDateWindow = DefaultDateWindow.WithMaxYearsBack(12)

// WithMaxYearsBack returns a copy of w with a different lookback.
func (w DateWindow) WithMaxYearsBack(years int) DateWindow {
	w.MaxYearsBack = years
	return w
}

// DateRange picks a start date inside w and, unless the range is ongoing,
// an end date after it. The end date is never later than now.
func DateRange(r *rand.Rand, now time.Time, w DateWindow) (Timestamp, *Timestamp) {
	maxDays := max(365*w.MaxYearsBack, w.MinDaysBack)
	back := intBetween(r, w.MinDaysBack, maxDays)
	start := now.Add(-time.Duration(back) * day)

	if r.Float64() < w.OngoingProbability {
		return NewTimestamp(start), nil
	}

	dur := intBetween(r, w.MinDurationDays, w.MaxDurationDays)
	end := start.Add(time.Duration(dur) * day)
	if end.After(now) {
		end = now
	}

	ts := NewTimestamp(end)
	return NewTimestamp(start), &ts
}
