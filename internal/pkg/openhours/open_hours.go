// Package openhours computes the open spans of a single day from layered
// open hours statements, restrictive control hours statements and labels.
//
// The day is cut into slots of a fixed interval. Statements are quantized
// onto the slots, merged by overwrite, intersected with the control mask and
// stripped of one-slot noise before being walked into ranges.
package openhours

// DayStatus summarizes the final slot map.
type DayStatus int

const (
	StatusClosed DayStatus = iota
	StatusPartial
	StatusOpenAllDay
)

func (s DayStatus) String() string {
	switch s {
	case StatusOpenAllDay:
		return "open_all_day"
	case StatusPartial:
		return "partial"
	default:
		return "closed"
	}
}

// OpenHours accumulates statements for one day. It is not safe for
// concurrent use.
type OpenHours struct {
	resolver  DateResolver
	grid      grid
	format    string
	trackDate bool

	open      accumulator
	control   accumulator
	labels    labelStore
	reference *Date

	final      []bool
	calculated bool
}

// New builds an empty timeline. An interval of 0 selects DefaultInterval.
// With trackDate set, every statement anchors the result to a calendar day,
// not only those falling on a day other than today.
func New(resolver DateResolver, interval int, trackDate bool) (*OpenHours, error) {
	if interval == 0 {
		interval = DefaultInterval
	}
	g, err := newGrid(interval)
	if err != nil {
		return nil, err
	}
	oh := &OpenHours{
		resolver:  resolver,
		grid:      g,
		format:    DefaultFormat,
		trackDate: trackDate,
	}
	oh.clear()
	return oh, nil
}

// AddOpenHours marks [open, close] as open. An empty endpoint, an
// unresolvable one, or an open after close closes the whole day instead.
func (oh *OpenHours) AddOpenHours(open, close Input, description string) {
	oh.addRange(&oh.open, open, close, description)
}

// AddControlHours restricts the day to [open, close]. Once any control
// statement exists, slots outside every control range are closed.
func (oh *OpenHours) AddControlHours(open, close Input, description string) {
	oh.addRange(&oh.control, open, close, description)
}

// Hours returns the open ranges of the day, ordered by time.
func (oh *OpenHours) Hours() Hours {
	return oh.formatRanges(oh.finalSlots())
}

// Status reports whether the day is closed, open all day or partially open.
func (oh *OpenHours) Status() DayStatus {
	var open, closed bool
	for _, slot := range oh.finalSlots() {
		if slot {
			open = true
		} else {
			closed = true
		}
	}
	switch {
	case !open:
		return StatusClosed
	case !closed:
		return StatusOpenAllDay
	default:
		return StatusPartial
	}
}

// SetFormat filters format down to time tokens and separators and uses the
// result. A format with nothing left after filtering is ignored and false is
// returned.
func (oh *OpenHours) SetFormat(format string) bool {
	filtered := FilterFormat(format)
	if filtered == "" {
		return false
	}
	oh.format = filtered
	return true
}

func (oh *OpenHours) Format() string {
	return oh.format
}

// SetInterval rebuilds the grid and drops every statement added so far.
func (oh *OpenHours) SetInterval(interval int) error {
	g, err := newGrid(interval)
	if err != nil {
		return err
	}
	oh.grid = g
	oh.Reset()
	return nil
}

// Reset drops all statements, labels and the reference date. Interval,
// format and date tracking are kept.
func (oh *OpenHours) Reset() {
	oh.clear()
}

func (oh *OpenHours) Interval() int {
	return oh.grid.interval
}

func (oh *OpenHours) TrackDate() bool {
	return oh.trackDate
}

// ReferenceDate is the calendar day the timeline is anchored to, if any.
func (oh *OpenHours) ReferenceDate() (Date, bool) {
	if oh.reference == nil {
		return Date{}, false
	}
	return *oh.reference, true
}

func (oh *OpenHours) clear() {
	oh.open = newAccumulator(oh.grid)
	oh.control = newAccumulator(oh.grid)
	oh.labels = newLabelStore(oh.grid)
	oh.reference = nil
	oh.invalidate()
}

func (oh *OpenHours) invalidate() {
	oh.final = nil
	oh.calculated = false
}

func (oh *OpenHours) finalSlots() []bool {
	if !oh.calculated {
		oh.final = oh.fullDay()
		oh.calculated = true
	}
	return oh.final
}
