package responses

import "time"

type Schedule struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Interval     int              `json:"interval"`
	Format       string           `json:"format"`
	OpenHours    []HoursStatement `json:"open_hours"`
	ControlHours []HoursStatement `json:"control_hours"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type ScheduleHours struct {
	ScheduleID   string `json:"schedule_id"`
	ScheduleName string `json:"schedule_name"`
	OpenHours
}
