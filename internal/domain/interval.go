package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Interval represents a half-open time range [Start, End).
// Touching endpoints do not overlap: back-to-back bookings are legal.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval creates an interval; Start must be strictly before End.
func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if !iv.IsValid() {
		return Interval{}, fmt.Errorf("interval start %s must be before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return iv, nil
}

// IsValid returns true if Start is strictly before End
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps reports whether two half-open intervals overlap.
// [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether t falls inside the interval (Start inclusive, End exclusive)
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Hours returns the length of the interval in hours as an exact decimal.
// Computed from seconds so sub-minute intervals are not truncated.
func (i Interval) Hours() decimal.Decimal {
	seconds := decimal.NewFromInt(int64(i.Duration() / time.Second))
	return seconds.Div(decimal.NewFromInt(3600))
}

// String returns the interval in RFC3339 form, for logs and error messages
func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}
