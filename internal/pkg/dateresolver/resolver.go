// Package dateresolver implements openhours.DateResolver on top of the
// standard time package and dateparse.
package dateresolver

import (
	"errors"
	"fmt"
	"openhours-service/internal/pkg/openhours"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnresolvable is returned when a string is neither a keyword, a time of
// day nor a date dateparse understands.
var ErrUnresolvable = errors.New("dateresolver: cannot resolve value to an instant")

var timeOfDayPattern = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2})(?::(\d{2}))?)?\s*(?:([ap])\.?\s*m\.?)?$`)

type Resolver struct {
	loc *time.Location
	now func() time.Time
}

var _ openhours.DateResolver = (*Resolver)(nil)

// New returns a resolver working in loc. A nil loc means time.Local and a
// nil now means time.Now.
func New(loc *time.Location, now func() time.Time) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Resolver{loc: loc, now: now}
}

// Location is the zone every instant is interpreted in.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

func (r *Resolver) IsAbsoluteInstant(in openhours.Input) bool {
	return in.Kind == openhours.InputInstant
}

func (r *Resolver) ResolveToInstant(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrUnresolvable
	}

	midnight := r.midnight(r.now())
	switch strings.ToLower(value) {
	case "now":
		return r.now().Unix(), nil
	case "today", "midnight":
		return midnight.Unix(), nil
	case "noon":
		return midnight.Add(12 * time.Hour).Unix(), nil
	case "tomorrow":
		return midnight.AddDate(0, 0, 1).Unix(), nil
	case "yesterday":
		return midnight.AddDate(0, 0, -1).Unix(), nil
	}

	if timeOfDayPattern.MatchString(value) {
		minute, ok := parseTimeOfDay(value)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnresolvable, value)
		}
		return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), 0, minute, 0, 0, r.loc).Unix(), nil
	}

	t, err := dateparse.ParseIn(value, r.loc)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrUnresolvable, value, err)
	}
	return t.Unix(), nil
}

func (r *Resolver) Format(epoch int64, layout string) string {
	return FormatPHP(time.Unix(epoch, 0).In(r.loc), layout)
}

func (r *Resolver) Clock(epoch int64) (openhours.Date, int) {
	t := time.Unix(epoch, 0).In(r.loc)
	return dateOf(t), t.Hour()*60 + t.Minute()
}

func (r *Resolver) Combine(day openhours.Date, minuteOfDay int) int64 {
	return time.Date(day.Year, day.Month, day.Day, 0, minuteOfDay, 0, 0, r.loc).Unix()
}

func (r *Resolver) Today() openhours.Date {
	return dateOf(r.now().In(r.loc))
}

func (r *Resolver) midnight(t time.Time) time.Time {
	t = t.In(r.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.loc)
}

func dateOf(t time.Time) openhours.Date {
	return openhours.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// parseTimeOfDay reads "9", "9:30", "17:45:10", "5pm" or "5:30 p.m." as
// minutes after midnight. "24:00" is the following midnight.
func parseTimeOfDay(value string) (int, bool) {
	m := timeOfDayPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	hasMinutes := m[2] != ""
	meridiem := strings.ToLower(m[4])

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if hasMinutes {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return 0, false
	}
	if m[3] != "" {
		if second, _ := strconv.Atoi(m[3]); second > 59 {
			return 0, false
		}
	}

	switch meridiem {
	case "a", "p":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		hour %= 12
		if meridiem == "p" {
			hour += 12
		}
	default:
		if hour > 24 || (hour == 24 && minute != 0) {
			return 0, false
		}
	}
	return hour*60 + minute, true
}
