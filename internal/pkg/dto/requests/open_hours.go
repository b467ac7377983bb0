package requests

import "openhours-service/internal/pkg/openhours"

type HoursStatement struct {
	Open        openhours.Input `json:"open"`
	Close       openhours.Input `json:"close"`
	Description string          `json:"description" validate:"max=200"`
}

type ComputeOpenHours struct {
	Interval     int              `json:"interval" validate:"omitempty,slot_interval"`
	Format       string           `json:"format" validate:"omitempty,hours_format"`
	TrackDate    bool             `json:"track_date"`
	OpenHours    []HoursStatement `json:"open_hours" validate:"max=500,dive"`
	ControlHours []HoursStatement `json:"control_hours" validate:"max=500,dive"`
}
