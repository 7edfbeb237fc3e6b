package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field represents a bookable sports field. Owned by the manager surface;
// immutable within the booking core.
type Field struct {
	ID               int64
	Name             string
	BasePricePerHour decimal.Decimal
	Timezone         string // IANA name, e.g. "Europe/Moscow"

	// Operating hours in the field's timezone, minutes from midnight.
	// nil means the field is open around the clock.
	OpenMinutes  *int
	CloseMinutes *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location returns the field's timezone, falling back to UTC on a bad name
func (f *Field) Location() *time.Location {
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HasOperatingHours returns true if the field restricts bookable hours
func (f *Field) HasOperatingHours() bool {
	return f.OpenMinutes != nil && f.CloseMinutes != nil
}

// WithinOperatingHours reports whether the interval fits inside the field's
// operating window on a single day. Fields without configured hours accept
// any interval.
func (f *Field) WithinOperatingHours(iv Interval) bool {
	if !f.HasOperatingHours() {
		return true
	}

	loc := f.Location()
	start := iv.Start.In(loc)
	end := iv.End.In(loc)

	// Интервал должен целиком лежать внутри одного рабочего дня
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	sameDay := ey == sy && em == sm && ed == sd
	nextMidnight := time.Date(sy, sm, sd+1, 0, 0, 0, 0, loc)
	endsAtMidnight := end.Equal(nextMidnight)
	if !sameDay && !endsAtMidnight {
		return false
	}

	startMinutes := start.Hour()*60 + start.Minute()
	endMinutes := end.Hour()*60 + end.Minute()
	if endsAtMidnight {
		endMinutes = 24 * 60
	}

	return startMinutes >= *f.OpenMinutes && endMinutes <= *f.CloseMinutes
}
