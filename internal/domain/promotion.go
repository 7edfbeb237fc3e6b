package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType represents how a promotion discounts the raw price
type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed_amount"
)

// Promotion is a time-bounded discount rule attached to a field.
// Lifecycle is owned by the manager surface; read-only to the booking core.
// At most one promotion is applied per booking.
type Promotion struct {
	ID            int64
	FieldID       int64
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	IsActive      bool

	CreatedAt time.Time
}

// Validity returns the promotion's validity window as a half-open interval
func (p *Promotion) Validity() Interval {
	return Interval{Start: p.StartDate, End: p.EndDate}
}

// AppliesTo reports whether the promotion can discount a booking
// for the given interval: it must be active and its validity window
// must intersect the booking interval.
func (p *Promotion) AppliesTo(iv Interval) bool {
	return p.IsActive && p.Validity().Overlaps(iv)
}
