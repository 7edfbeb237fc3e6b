package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FieldBookingService/pkg/ptr"
)

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}
	return Interval{Start: s, End: e}
}

func TestInterval_Overlaps(t *testing.T) {
	base := mustInterval(t, "2026-06-01T10:00:00Z", "2026-06-01T12:00:00Z")

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{
			name:  "identical intervals overlap",
			other: mustInterval(t, "2026-06-01T10:00:00Z", "2026-06-01T12:00:00Z"),
			want:  true,
		},
		{
			name:  "partial overlap at the end",
			other: mustInterval(t, "2026-06-01T11:00:00Z", "2026-06-01T13:00:00Z"),
			want:  true,
		},
		{
			name:  "partial overlap at the start",
			other: mustInterval(t, "2026-06-01T09:00:00Z", "2026-06-01T11:00:00Z"),
			want:  true,
		},
		{
			name:  "contained interval overlaps",
			other: mustInterval(t, "2026-06-01T10:30:00Z", "2026-06-01T11:30:00Z"),
			want:  true,
		},
		{
			name:  "containing interval overlaps",
			other: mustInterval(t, "2026-06-01T09:00:00Z", "2026-06-01T13:00:00Z"),
			want:  true,
		},
		{
			name:  "abutting after does not overlap",
			other: mustInterval(t, "2026-06-01T12:00:00Z", "2026-06-01T14:00:00Z"),
			want:  false,
		},
		{
			name:  "abutting before does not overlap",
			other: mustInterval(t, "2026-06-01T08:00:00Z", "2026-06-01T10:00:00Z"),
			want:  false,
		},
		{
			name:  "disjoint does not overlap",
			other: mustInterval(t, "2026-06-01T14:00:00Z", "2026-06-01T16:00:00Z"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestInterval_Hours(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		want     decimal.Decimal
	}{
		{
			name:     "whole hours",
			interval: mustInterval(t, "2026-06-01T10:00:00Z", "2026-06-01T12:00:00Z"),
			want:     decimal.NewFromInt(2),
		},
		{
			name:     "half hour",
			interval: mustInterval(t, "2026-06-01T10:00:00Z", "2026-06-01T10:30:00Z"),
			want:     decimal.NewFromFloat(0.5),
		},
		{
			name:     "ninety minutes",
			interval: mustInterval(t, "2026-06-01T10:00:00Z", "2026-06-01T11:30:00Z"),
			want:     decimal.NewFromFloat(1.5),
		},
		{
			name:     "ninety seconds",
			interval: mustInterval(t, "2026-06-01T10:00:00Z", "2026-06-01T10:01:30Z"),
			want:     decimal.NewFromFloat(0.025),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.interval.Hours()),
				"want %s, got %s", tt.want, tt.interval.Hours())
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	valid := mustInterval(t, "2026-06-01T10:00:00Z", "2026-06-01T12:00:00Z")
	assert.True(t, valid.IsValid())

	inverted := Interval{Start: valid.End, End: valid.Start}
	assert.False(t, inverted.IsValid())

	empty := Interval{Start: valid.Start, End: valid.Start}
	assert.False(t, empty.IsValid(), "zero-length interval is invalid")
}

func TestField_WithinOperatingHours(t *testing.T) {
	field := &Field{
		ID:               1,
		BasePricePerHour: decimal.NewFromInt(20),
		Timezone:         "UTC",
		OpenMinutes:      ptr.Ptr(8 * 60),  // 08:00
		CloseMinutes:     ptr.Ptr(22 * 60), // 22:00
	}

	tests := []struct {
		name     string
		interval Interval
		want     bool
	}{
		{
			name:     "inside operating hours",
			interval: mustInterval(t, "2026-06-01T10:00:00Z", "2026-06-01T12:00:00Z"),
			want:     true,
		},
		{
			name:     "exactly the operating window",
			interval: mustInterval(t, "2026-06-01T08:00:00Z", "2026-06-01T22:00:00Z"),
			want:     true,
		},
		{
			name:     "starts before opening",
			interval: mustInterval(t, "2026-06-01T07:00:00Z", "2026-06-01T09:00:00Z"),
			want:     false,
		},
		{
			name:     "ends after closing",
			interval: mustInterval(t, "2026-06-01T21:00:00Z", "2026-06-01T23:00:00Z"),
			want:     false,
		},
		{
			name:     "spans two days",
			interval: mustInterval(t, "2026-06-01T21:00:00Z", "2026-06-02T09:00:00Z"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, field.WithinOperatingHours(tt.interval))
		})
	}

	t.Run("field without hours accepts any interval", func(t *testing.T) {
		openAll := &Field{ID: 2, Timezone: "UTC"}
		iv := mustInterval(t, "2026-06-01T23:00:00Z", "2026-06-02T01:00:00Z")
		assert.True(t, openAll.WithinOperatingHours(iv))
	})

	t.Run("interval ending at midnight counts as same day", func(t *testing.T) {
		f := &Field{ID: 3, Timezone: "UTC", OpenMinutes: ptr.Ptr(8 * 60), CloseMinutes: ptr.Ptr(24 * 60)}
		iv := mustInterval(t, "2026-06-01T22:00:00Z", "2026-06-02T00:00:00Z")
		assert.True(t, f.WithinOperatingHours(iv))
	})
}
