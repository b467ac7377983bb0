package openhours

import (
	"fmt"
	"strings"
)

// Range is one contiguous open span of the day.
type Range struct {
	OpenSlot    int    `json:"open_slot"`
	CloseSlot   int    `json:"close_slot"`
	Open        string `json:"open"`
	Close       string `json:"close"`
	OpenAt      *int64 `json:"open_at,omitempty"`
	CloseAt     *int64 `json:"close_at,omitempty"`
	Description string `json:"description,omitempty"`
}

// Hours is the formatted result of a day. Date is nil unless a statement
// anchored the timeline to a calendar day, in which case every range also
// carries OpenAt and CloseAt.
type Hours struct {
	Date   *Date   `json:"date,omitempty"`
	Ranges []Range `json:"ranges"`
}

// HasDate reports whether the ranges carry absolute instants.
func (h Hours) HasDate() bool {
	return h.Date != nil
}

func (h Hours) String() string {
	if len(h.Ranges) == 0 {
		return "Closed"
	}
	parts := make([]string, 0, len(h.Ranges))
	for _, r := range h.Ranges {
		part := fmt.Sprintf("%s - %s", r.Open, r.Close)
		if r.Description != "" {
			part = fmt.Sprintf("%s (%s)", part, r.Description)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

// formatRanges walks final into open spans. The close slot of a span is its
// last open slot.
func (oh *OpenHours) formatRanges(final []bool) Hours {
	hours := Hours{Ranges: []Range{}}
	if oh.reference != nil {
		day := *oh.reference
		hours.Date = &day
	}

	for i := 0; i < len(final); i++ {
		if !final[i] {
			continue
		}
		start := i
		for i+1 < len(final) && final[i+1] {
			i++
		}
		hours.Ranges = append(hours.Ranges, oh.buildRange(start, i, hours.Date))
	}
	return hours
}

func (oh *OpenHours) buildRange(openSlot, closeSlot int, day *Date) Range {
	openMinute := oh.grid.slotToMinutes(openSlot)
	closeMinute := oh.grid.slotToMinutes(closeSlot)

	r := Range{
		OpenSlot:    openSlot,
		CloseSlot:   closeSlot,
		Open:        oh.renderMinute(openMinute),
		Close:       oh.renderMinute(closeMinute),
		Description: strings.Join(oh.labels.between(openSlot, closeSlot), ", "),
	}
	if day != nil {
		openAt := oh.resolver.Combine(*day, openMinute)
		closeAt := oh.resolver.Combine(*day, closeMinute)
		r.OpenAt = &openAt
		r.CloseAt = &closeAt
	}
	return r
}

func (oh *OpenHours) renderMinute(minute int) string {
	day := oh.resolver.Today()
	if oh.reference != nil {
		day = *oh.reference
	}
	return oh.resolver.Format(oh.resolver.Combine(day, minute), oh.format)
}
