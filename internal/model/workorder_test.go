package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		hhmm string
		want time.Time
		ok   bool
	}{
		{"explicit time", "14:30", time.Date(2026, time.March, 14, 14, 30, 0, 0, time.Local), true},
		{"midnight", "00:00", date, true},
		{"empty time falls back to start of day", "", date, true},
		{"garbage time", "half past two", time.Time{}, false},
		{"out of range", "25:61", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CombineDateTime(date, tt.hhmm)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCombineDateTimeZeroDate(t *testing.T) {
	_, ok := CombineDateTime(time.Time{}, "10:00")
	assert.False(t, ok, "a record without a date has no usable instant")
}

func TestWorkOrderEffectiveAt(t *testing.T) {
	order := WorkOrder{
		ScheduledDate: time.Date(2026, time.May, 2, 0, 0, 0, 0, time.Local),
		ScheduledTime: "09:15",
	}

	at, ok := order.EffectiveAt()
	assert.True(t, ok)
	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, 15, at.Minute())
}
