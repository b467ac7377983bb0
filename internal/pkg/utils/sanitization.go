package utils

import (
	"openhours-service/internal/pkg/dto/requests"
	"strings"
)

func sanitizeStatements(statements []requests.HoursStatement) {
	for i := range statements {
		statements[i].Description = strings.TrimSpace(statements[i].Description)
	}
}

func SanitizeComputeOpenHoursRequest(input *requests.ComputeOpenHours) {
	input.Format = strings.TrimSpace(input.Format)
	sanitizeStatements(input.OpenHours)
	sanitizeStatements(input.ControlHours)
}

func SanitizeCreateScheduleRequest(input *requests.CreateSchedule) {
	input.Name = strings.TrimSpace(input.Name)
	input.Format = strings.TrimSpace(input.Format)
	sanitizeStatements(input.OpenHours)
	sanitizeStatements(input.ControlHours)
}

func SanitizeUpdateScheduleRequest(input *requests.UpdateSchedule) {
	input.ScheduleID = strings.TrimSpace(input.ScheduleID)
	input.Name = strings.TrimSpace(input.Name)
	input.Format = strings.TrimSpace(input.Format)
	sanitizeStatements(input.OpenHours)
	sanitizeStatements(input.ControlHours)
}
