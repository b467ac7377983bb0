package schedules

import (
	"context"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) (string, error) {
	args := m.Called(ctx, schedule)
	return args.String(0), args.Error(1)
}

func (m *MockScheduleRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Schedule, int, error) {
	args := m.Called(ctx, page, pageSize)
	schedules, _ := args.Get(0).([]models.Schedule)
	return schedules, args.Int(1), args.Error(2)
}

func (m *MockScheduleRepository) FindEvery(ctx context.Context, fn func(schedule models.Schedule) error) error {
	args := m.Called(ctx, fn)
	schedules, _ := args.Get(0).([]models.Schedule)
	for _, schedule := range schedules {
		if err := fn(schedule); err != nil {
			return err
		}
	}
	return args.Error(1)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	schedule, _ := args.Get(0).(*models.Schedule)
	return schedule, args.Error(1)
}

func (m *MockScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	args := m.Called(ctx, pattern)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	args := m.Called(ctx, key, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) Create(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Schedule)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) FindAll(ctx context.Context, request *requests.Pagination) ([]responses.Schedule, int, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).([]responses.Schedule)
	return response, args.Int(1), args.Error(2)
}

func (m *MockScheduleUsecase) FindByID(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	response, _ := args.Get(0).(*responses.Schedule)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) Update(ctx context.Context, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Schedule)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) Delete(ctx context.Context, scheduleID string) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

func (m *MockScheduleUsecase) GetScheduleHours(ctx context.Context, request *requests.ScheduleHours) (*responses.ScheduleHours, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.ScheduleHours)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) RefreshScheduleHours(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
