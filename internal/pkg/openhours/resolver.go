package openhours

import (
	"fmt"
	"time"
)

// Date is a calendar day without a time of day.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateResolver turns statement endpoints into instants and instants into text.
// OpenHours never does calendar arithmetic on its own; everything past
// minute-of-day bookkeeping goes through this interface.
type DateResolver interface {
	// IsAbsoluteInstant reports whether in already holds an epoch instant.
	IsAbsoluteInstant(in Input) bool
	// ResolveToInstant parses a free-form date/time string.
	ResolveToInstant(value string) (int64, error)
	// Format renders epoch with a PHP date() style layout.
	Format(epoch int64, layout string) string
	// Clock splits epoch into its calendar day and minute of that day.
	Clock(epoch int64) (Date, int)
	// Combine is the inverse of Clock. A minute of 1440 is the next day's midnight.
	Combine(day Date, minuteOfDay int) int64
	// Today is the current calendar day.
	Today() Date
}
