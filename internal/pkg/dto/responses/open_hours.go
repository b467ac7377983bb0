package responses

import "openhours-service/internal/pkg/openhours"

type OpenHours struct {
	Interval int               `json:"interval"`
	Format   string            `json:"format"`
	Status   string            `json:"status"`
	Date     string            `json:"date,omitempty"`
	Ranges   []openhours.Range `json:"ranges"`
	Text     string            `json:"text"`
}

type HoursStatement struct {
	Open        openhours.Input `json:"open"`
	Close       openhours.Input `json:"close"`
	Description string          `json:"description,omitempty"`
}
