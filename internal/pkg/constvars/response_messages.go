package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Open hours messages
	ComputeOpenHoursSuccessMessage = "open hours computed successfully"
	GetScheduleHoursSuccessMessage = "get schedule hours successfully"

	// Schedule messages
	CreateScheduleSuccessMessage = "schedule created successfully"
	UpdateScheduleSuccessMessage = "schedule updated successfully"
	DeleteScheduleSuccessMessage = "schedule deleted successfully"
	GetScheduleSuccessMessage    = "get schedule successfully"
	GetSchedulesSuccessMessage   = "get schedules successfully"
)
