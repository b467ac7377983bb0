package requests

type CreateSchedule struct {
	Name         string           `json:"name" validate:"required,max=100"`
	Interval     int              `json:"interval" validate:"omitempty,slot_interval"`
	Format       string           `json:"format" validate:"omitempty,hours_format"`
	OpenHours    []HoursStatement `json:"open_hours" validate:"max=500,dive"`
	ControlHours []HoursStatement `json:"control_hours" validate:"max=500,dive"`
}

type UpdateSchedule struct {
	ScheduleID   string           `json:"-"`
	Name         string           `json:"name" validate:"required,max=100"`
	Interval     int              `json:"interval" validate:"omitempty,slot_interval"`
	Format       string           `json:"format" validate:"omitempty,hours_format"`
	OpenHours    []HoursStatement `json:"open_hours" validate:"max=500,dive"`
	ControlHours []HoursStatement `json:"control_hours" validate:"max=500,dive"`
}

// ScheduleHours asks for the hours of a stored schedule. An empty Date means today.
type ScheduleHours struct {
	ScheduleID string
	Date       string
}
