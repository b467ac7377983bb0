package schedules

import (
	"context"
	"fmt"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	RedisRepository    contracts.RedisRepository
	OpenHoursUsecase   contracts.OpenHoursUsecase
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	now                func() time.Time
}

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	redisRepository contracts.RedisRepository,
	openHoursUsecase contracts.OpenHoursUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepository: scheduleRepository,
		RedisRepository:    redisRepository,
		OpenHoursUsecase:   openHoursUsecase,
		InternalConfig:     internalConfig,
		Log:                logger,
		now:                time.Now,
	}
}

func (uc *scheduleUsecase) Create(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	schedule := &models.Schedule{
		Name:         request.Name,
		Interval:     request.Interval,
		Format:       request.Format,
		OpenHours:    models.NewHoursStatements(request.OpenHours),
		ControlHours: models.NewHoursStatements(request.ControlHours),
	}

	scheduleID, err := uc.ScheduleRepository.Create(ctx, schedule)
	if err != nil {
		uc.Log.Error("scheduleUsecase.Create error inserting schedule into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "schedule_created", requestID,
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	response := schedule.ConvertIntoResponse()
	return &response, nil
}

func (uc *scheduleUsecase) FindAll(ctx context.Context, request *requests.Pagination) ([]responses.Schedule, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	schedules, total, err := uc.ScheduleRepository.FindAll(ctx, request.Page, request.PageSize)
	if err != nil {
		uc.Log.Error("scheduleUsecase.FindAll error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	response := make([]responses.Schedule, len(schedules))
	for i, eachSchedule := range schedules {
		response[i] = eachSchedule.ConvertIntoResponse()
	}

	uc.Log.Info("scheduleUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingScheduleCountKey, len(response)),
	)
	return response, total, nil
}

func (uc *scheduleUsecase) FindByID(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	schedule, err := uc.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	response := schedule.ConvertIntoResponse()
	return &response, nil
}

func (uc *scheduleUsecase) Update(ctx context.Context, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
	)

	schedule, err := uc.findSchedule(ctx, request.ScheduleID)
	if err != nil {
		return nil, err
	}

	schedule.Name = request.Name
	schedule.Interval = request.Interval
	schedule.Format = request.Format
	schedule.OpenHours = models.NewHoursStatements(request.OpenHours)
	schedule.ControlHours = models.NewHoursStatements(request.ControlHours)

	err = uc.ScheduleRepository.Update(ctx, schedule)
	if err != nil {
		uc.Log.Error("scheduleUsecase.Update error updating schedule in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.invalidateScheduleHours(ctx, request.ScheduleID)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "schedule_updated", requestID,
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
	)

	response := schedule.ConvertIntoResponse()
	return &response, nil
}

func (uc *scheduleUsecase) Delete(ctx context.Context, scheduleID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	err := uc.ScheduleRepository.Delete(ctx, scheduleID)
	if err != nil {
		uc.Log.Error("scheduleUsecase.Delete error deleting schedule from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.invalidateScheduleHours(ctx, scheduleID)
	if err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "schedule_deleted", requestID,
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)
	return nil
}

func (uc *scheduleUsecase) GetScheduleHours(ctx context.Context, request *requests.ScheduleHours) (*responses.ScheduleHours, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.GetScheduleHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, request.ScheduleID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	location := uc.OpenHoursUsecase.Location()
	day, err := utils.ParseDateParam(request.Date, location)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetScheduleHours error parsing date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if day.IsZero() {
		day = uc.now().In(location)
	}

	version, err := uc.scheduleHoursVersion(ctx, request.ScheduleID)
	if err != nil {
		return nil, err
	}

	cacheKey := scheduleHoursKey(request.ScheduleID, version, day)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetScheduleHours error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if cached != "" {
		uc.Log.Info("scheduleUsecase.GetScheduleHours data found in Redis, parsing JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
		)
		var response responses.ScheduleHours
		err = json.Unmarshal([]byte(cached), &response)
		if err != nil {
			uc.Log.Error("scheduleUsecase.GetScheduleHours error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return &response, nil
	}

	uc.Log.Info("scheduleUsecase.GetScheduleHours no data found in Redis, computing from MongoDB",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	schedule, err := uc.findSchedule(ctx, request.ScheduleID)
	if err != nil {
		return nil, err
	}

	response, err := uc.computeAndCache(ctx, *schedule, version, day)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetScheduleHours error computing hours",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.GetScheduleHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRangeCountKey, len(response.Ranges)),
	)
	return response, nil
}

// RefreshScheduleHours computes today's hours of every schedule into the
// cache and returns how many were stored. A schedule that fails is logged
// and skipped.
func (uc *scheduleUsecase) RefreshScheduleHours(ctx context.Context) (int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scheduleUsecase.RefreshScheduleHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	today := uc.now().In(uc.OpenHoursUsecase.Location())
	refreshed := 0
	err := uc.ScheduleRepository.FindEvery(ctx, func(schedule models.Schedule) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := uc.refreshSchedule(ctx, schedule.ID.Hex(), today)
		if err != nil {
			uc.Log.Warn("scheduleUsecase.RefreshScheduleHours skipping schedule",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingScheduleIDKey, schedule.ID.Hex()),
				zap.Error(err),
			)
			return nil
		}
		refreshed++
		return nil
	})
	if err != nil {
		uc.Log.Error("scheduleUsecase.RefreshScheduleHours error iterating schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return refreshed, err
	}

	uc.Log.Info("scheduleUsecase.RefreshScheduleHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingScheduleCountKey, refreshed),
	)
	return refreshed, nil
}

func (uc *scheduleUsecase) findSchedule(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		uc.Log.Error("scheduleUsecase.findSchedule error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(mongo.ErrNoDocuments, scheduleID)
	}
	return schedule, nil
}

// refreshSchedule reads the cache version before the schedule itself, so a
// concurrent update always leaves this write under a superseded version.
func (uc *scheduleUsecase) refreshSchedule(ctx context.Context, scheduleID string, day time.Time) (*responses.ScheduleHours, error) {
	version, err := uc.scheduleHoursVersion(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.findSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return uc.computeAndCache(ctx, *schedule, version, day)
}

func (uc *scheduleUsecase) computeAndCache(ctx context.Context, schedule models.Schedule, version int64, day time.Time) (*responses.ScheduleHours, error) {
	hours, err := uc.OpenHoursUsecase.ComputeOn(ctx, schedule.ConvertIntoComputeRequest(), day)
	if err != nil {
		return nil, err
	}

	response := &responses.ScheduleHours{
		ScheduleID:   schedule.ID.Hex(),
		ScheduleName: schedule.Name,
		OpenHours:    *hours,
	}

	ttl := time.Duration(uc.InternalConfig.OpenHours.CacheTTLInHours) * time.Hour
	err = uc.RedisRepository.Set(ctx, scheduleHoursKey(response.ScheduleID, version, day), response, ttl)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// scheduleHoursVersion returns the generation cached hours of scheduleID are
// stored under. A schedule that was never changed is at version 0.
func (uc *scheduleUsecase) scheduleHoursVersion(ctx context.Context, scheduleID string) (int64, error) {
	versionKey := fmt.Sprintf(constvars.RedisKeyScheduleHoursVersion, scheduleID)
	raw, err := uc.RedisRepository.Get(ctx, versionKey)
	if err != nil {
		uc.Log.Error("scheduleUsecase.scheduleHoursVersion error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, versionKey),
			zap.Error(err),
		)
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, exceptions.ErrRedisGetNoData(err, versionKey)
	}
	return version, nil
}

// invalidateScheduleHours moves scheduleID to a new cache version before
// dropping the old entries. A compute that started earlier writes under the
// old version, which nothing reads any more.
func (uc *scheduleUsecase) invalidateScheduleHours(ctx context.Context, scheduleID string) error {
	versionKey := fmt.Sprintf(constvars.RedisKeyScheduleHoursVersion, scheduleID)
	_, err := uc.RedisRepository.Increment(ctx, versionKey)
	if err != nil {
		uc.Log.Error("scheduleUsecase.invalidateScheduleHours error bumping cache version",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, versionKey),
			zap.Error(err),
		)
		return err
	}

	pattern := fmt.Sprintf(constvars.RedisKeyScheduleHoursPrefix, scheduleID)
	deleted, err := uc.RedisRepository.DeleteByPattern(ctx, pattern)
	if err != nil {
		uc.Log.Error("scheduleUsecase.invalidateScheduleHours error deleting cached hours",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, pattern),
			zap.Error(err),
		)
		return err
	}
	uc.Log.Debug("scheduleUsecase.invalidateScheduleHours removed cached hours",
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.Int("deleted", deleted),
	)
	return nil
}

func scheduleHoursKey(scheduleID string, version int64, day time.Time) string {
	return fmt.Sprintf(constvars.RedisKeyScheduleHoursFormat, scheduleID, version, day.Format(constvars.AppDateLayout))
}
