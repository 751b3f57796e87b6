package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreeSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		taken []string
		want  []string
	}{
		{
			"full morning free",
			"09:00", "13:00",
			nil,
			[]string{"09:00", "10:00", "11:00", "12:00"},
		},
		{
			"booked slots dropped",
			"09:00", "13:00",
			[]string{"10:00", "12:00"},
			[]string{"09:00", "11:00"},
		},
		{
			"fully booked",
			"09:00", "11:00",
			[]string{"09:00", "10:00"},
			[]string{},
		},
		{
			"last slot must fit before closing",
			"09:00", "10:30",
			nil,
			[]string{"09:00"},
		},
		{
			"half hour start",
			"08:30", "11:30",
			nil,
			[]string{"08:30", "09:30", "10:30"},
		},
		{
			"inverted window yields nothing",
			"15:00", "09:00",
			nil,
			[]string{},
		},
		{
			"malformed bounds yield nothing",
			"morning", "13:00",
			nil,
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, freeSlots(tt.start, tt.end, tt.taken))
		})
	}
}

func TestParseClock(t *testing.T) {
	m, ok := parseClock("09:30")
	assert.True(t, ok)
	assert.Equal(t, 570, m)

	m, ok = parseClock("00:00")
	assert.True(t, ok)
	assert.Zero(t, m)

	_, ok = parseClock("24:00")
	assert.False(t, ok)

	_, ok = parseClock("09:75")
	assert.False(t, ok)

	_, ok = parseClock("mediodia")
	assert.False(t, ok)
}

func TestBeforeToday(t *testing.T) {
	// Booking dates parse as UTC midnight; the clock runs in the configured
	// zone. Guayaquil (UTC-5) is the default deployment zone.
	guayaquil := time.FixedZone("America/Guayaquil", -5*60*60)
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		date time.Time
		now  time.Time
		want bool
	}{
		{
			"same day morning",
			date(2026, time.September, 1),
			time.Date(2026, time.September, 1, 8, 0, 0, 0, guayaquil),
			false,
		},
		{
			// 20:30 local is already 01:30 UTC of the next day; an epoch
			// truncation would call today's date past.
			"same day evening in a western zone",
			date(2026, time.September, 1),
			time.Date(2026, time.September, 1, 20, 30, 0, 0, guayaquil),
			false,
		},
		{
			"yesterday",
			date(2026, time.August, 31),
			time.Date(2026, time.September, 1, 8, 0, 0, 0, guayaquil),
			true,
		},
		{
			"tomorrow",
			date(2026, time.September, 2),
			time.Date(2026, time.September, 1, 8, 0, 0, 0, guayaquil),
			false,
		},
		{
			"previous month",
			date(2026, time.August, 15),
			time.Date(2026, time.September, 1, 8, 0, 0, 0, guayaquil),
			true,
		},
		{
			"previous year",
			date(2025, time.December, 31),
			time.Date(2026, time.January, 1, 8, 0, 0, 0, guayaquil),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, beforeToday(tt.date, tt.now))
		})
	}
}
