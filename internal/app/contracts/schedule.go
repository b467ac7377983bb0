package contracts

import (
	"context"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Schedule, int, error)
	FindEvery(ctx context.Context, fn func(schedule models.Schedule) error) error
	FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, scheduleID string) error
}

type ScheduleUsecase interface {
	Create(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error)
	FindAll(ctx context.Context, request *requests.Pagination) ([]responses.Schedule, int, error)
	FindByID(ctx context.Context, scheduleID string) (*responses.Schedule, error)
	Update(ctx context.Context, request *requests.UpdateSchedule) (*responses.Schedule, error)
	Delete(ctx context.Context, scheduleID string) error
	GetScheduleHours(ctx context.Context, request *requests.ScheduleHours) (*responses.ScheduleHours, error)
	RefreshScheduleHours(ctx context.Context) (int, error)
}
