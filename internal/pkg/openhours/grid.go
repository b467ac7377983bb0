package openhours

import "errors"

const (
	// MinutesPerDay is the length of the timeline every instance covers.
	MinutesPerDay = 24 * 60
	// DefaultInterval is the slot width used when none is given.
	DefaultInterval = 30
)

// ErrInvalidInterval is returned for intervals that do not split the day into whole slots.
var ErrInvalidInterval = errors.New("openhours: interval must be a positive divisor of 1440")

// grid is the slot index space 0..last of one day.
type grid struct {
	interval int
	last     int
}

func newGrid(interval int) (grid, error) {
	if !ValidInterval(interval) {
		return grid{}, ErrInvalidInterval
	}
	return grid{interval: interval, last: MinutesPerDay / interval}, nil
}

// ValidInterval reports whether interval minutes divide the day evenly.
func ValidInterval(interval int) bool {
	return interval > 0 && MinutesPerDay%interval == 0
}

func (g grid) size() int {
	return g.last + 1
}

func (g grid) slotToMinutes(slot int) int {
	return slot * g.interval
}

// minutesToSlot floors minute onto the slot that contains it.
func (g grid) minutesToSlot(minute int) int {
	if minute <= 0 {
		return 0
	}
	slot := minute / g.interval
	if slot > g.last {
		return g.last
	}
	return slot
}

func (g grid) filled(value bool) []bool {
	slots := make([]bool, g.size())
	if value {
		for i := range slots {
			slots[i] = true
		}
	}
	return slots
}
