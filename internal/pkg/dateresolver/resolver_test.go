package dateresolver

import (
	"openhours-service/internal/pkg/openhours"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)

func newTestResolver() *Resolver {
	return New(time.UTC, func() time.Time { return fixedNow })
}

func TestResolveToInstant(t *testing.T) {
	r := newTestResolver()
	today := func(hour, minute int) int64 {
		return time.Date(2024, time.March, 1, hour, minute, 0, 0, time.UTC).Unix()
	}

	tests := []struct {
		name  string
		value string
		want  int64
	}{
		{"bare hour", "9", today(9, 0)},
		{"bare afternoon hour", "17", today(17, 0)},
		{"bare end of day", "24", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC).Unix()},
		{"24 hour clock", "9:00", today(9, 0)},
		{"24 hour clock with seconds", "17:45:10", today(17, 45)},
		{"meridiem", "5pm", today(17, 0)},
		{"meridiem with minutes", "5:30 p.m.", today(17, 30)},
		{"midnight meridiem", "12am", today(0, 0)},
		{"noon meridiem", "12:15PM", today(12, 15)},
		{"end of day", "24:00", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC).Unix()},
		{"keyword midnight", "midnight", today(0, 0)},
		{"keyword noon", "noon", today(12, 0)},
		{"keyword now", "now", fixedNow.Unix()},
		{"keyword tomorrow", "Tomorrow", time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC).Unix()},
		{"full date time", "2024-03-05 09:00", time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC).Unix()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ResolveToInstant(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Unresolvable", func(t *testing.T) {
		for _, value := range []string{"", "   ", "not a time", "25:00", "25", "13pm", "9:75"} {
			_, err := r.ResolveToInstant(value)
			assert.ErrorIs(t, err, ErrUnresolvable, value)
		}
	})
}

func TestClockAndCombine(t *testing.T) {
	r := newTestResolver()
	epoch := time.Date(2024, time.March, 5, 13, 20, 0, 0, time.UTC).Unix()

	day, minute := r.Clock(epoch)
	assert.Equal(t, openhours.Date{Year: 2024, Month: time.March, Day: 5}, day)
	assert.Equal(t, 800, minute)
	assert.Equal(t, epoch, r.Combine(day, minute))

	nextMidnight := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, nextMidnight, r.Combine(day, openhours.MinutesPerDay))
	assert.Equal(t, openhours.Date{Year: 2024, Month: time.March, Day: 1}, r.Today())
}

func TestClockInLocation(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	r := New(loc, func() time.Time { return fixedNow })

	day, minute := r.Clock(time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC).Unix())
	assert.Equal(t, 2, day.Day)
	assert.Equal(t, 3*60, minute)
	assert.Equal(t, loc, r.Location())
}

func TestIsAbsoluteInstant(t *testing.T) {
	r := newTestResolver()
	assert.True(t, r.IsAbsoluteInstant(openhours.Instant(0)))
	assert.False(t, r.IsAbsoluteInstant(openhours.Text("1709283600")))
	assert.False(t, r.IsAbsoluteInstant(openhours.Input{}))
}
