package contracts

import (
	"context"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
	"time"
)

type OpenHoursUsecase interface {
	Compute(ctx context.Context, request *requests.ComputeOpenHours) (*responses.OpenHours, error)
	// ComputeOn evaluates the statements as if day were today and anchors the
	// result to day.
	ComputeOn(ctx context.Context, request *requests.ComputeOpenHours, day time.Time) (*responses.OpenHours, error)
	Location() *time.Location
}
