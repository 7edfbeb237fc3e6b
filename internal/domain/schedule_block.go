package domain

import "time"

// ScheduleBlock is a manager-declared unavailability window. It occupies
// the field's timeline exactly like a booking for conflict purposes but
// carries no price and no owner.
type ScheduleBlock struct {
	ID        int64
	FieldID   int64
	StartTime time.Time
	EndTime   time.Time
	Reason    string

	CreatedAt time.Time
}

// Interval returns the blocked time range
func (b *ScheduleBlock) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}
