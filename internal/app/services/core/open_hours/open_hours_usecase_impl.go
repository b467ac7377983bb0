package openHours

import (
	"context"
	"errors"
	"fmt"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dateresolver"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/openhours"
	"openhours-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type openHoursUsecase struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	location       *time.Location
	now            func() time.Time
}

func NewOpenHoursUsecase(internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.OpenHoursUsecase, error) {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", constvars.ErrDevCannotLoadTimezone, internalConfig.App.Timezone, err)
	}
	return newOpenHoursUsecase(internalConfig, logger, location, time.Now), nil
}

func newOpenHoursUsecase(internalConfig *config.InternalConfig, logger *zap.Logger, location *time.Location, now func() time.Time) *openHoursUsecase {
	return &openHoursUsecase{
		InternalConfig: internalConfig,
		Log:            logger,
		location:       location,
		now:            now,
	}
}

func (uc *openHoursUsecase) Location() *time.Location {
	return uc.location
}

func (uc *openHoursUsecase) Compute(ctx context.Context, request *requests.ComputeOpenHours) (*responses.OpenHours, error) {
	trackDate := request.TrackDate || uc.InternalConfig.OpenHours.TrackDate
	return uc.compute(ctx, request, uc.now(), trackDate)
}

func (uc *openHoursUsecase) ComputeOn(ctx context.Context, request *requests.ComputeOpenHours, day time.Time) (*responses.OpenHours, error) {
	if day.IsZero() {
		day = uc.now()
	}
	year, month, date := day.In(uc.location).Date()
	anchor := time.Date(year, month, date, 12, 0, 0, 0, uc.location)
	return uc.compute(ctx, request, anchor, true)
}

func (uc *openHoursUsecase) compute(ctx context.Context, request *requests.ComputeOpenHours, now time.Time, trackDate bool) (*responses.OpenHours, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("openHoursUsecase.compute called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatementCountKey, len(request.OpenHours)+len(request.ControlHours)),
		zap.Int(constvars.LoggingIntervalKey, request.Interval),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	interval := request.Interval
	if interval == 0 {
		interval = uc.InternalConfig.OpenHours.DefaultInterval
	}
	format := request.Format
	if format == "" {
		format = uc.InternalConfig.OpenHours.DefaultFormat
	}

	resolver := dateresolver.New(uc.location, func() time.Time { return now })
	calculator, err := openhours.New(resolver, interval, trackDate)
	if err != nil {
		uc.Log.Error("openHoursUsecase.compute error building calculator",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, openhours.ErrInvalidInterval) {
			return nil, exceptions.ErrInvalidInterval(err)
		}
		return nil, exceptions.ErrBuildOpenHours(err)
	}

	if !calculator.SetFormat(format) {
		uc.Log.Warn("openHoursUsecase.compute format has no time characters, keeping default",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("format", format),
		)
	}

	for _, statement := range request.OpenHours {
		uc.warnUnresolvable(requestID, resolver, statement)
		calculator.AddOpenHours(statement.Open, statement.Close, statement.Description)
	}
	for _, statement := range request.ControlHours {
		uc.warnUnresolvable(requestID, resolver, statement)
		calculator.AddControlHours(statement.Open, statement.Close, statement.Description)
	}

	hours := calculator.Hours()
	response := &responses.OpenHours{
		Interval: calculator.Interval(),
		Format:   calculator.Format(),
		Status:   calculator.Status().String(),
		Ranges:   hours.Ranges,
		Text:     hours.String(),
	}
	if hours.HasDate() {
		response.Date = hours.Date.String()
	}

	uc.Log.Info("openHoursUsecase.compute succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRangeCountKey, len(response.Ranges)),
		zap.String(constvars.LoggingDateKey, response.Date),
	)
	return response, nil
}

// warnUnresolvable logs text endpoints the calculator will treat as closed.
func (uc *openHoursUsecase) warnUnresolvable(requestID string, resolver *dateresolver.Resolver, statement requests.HoursStatement) {
	for _, endpoint := range []openhours.Input{statement.Open, statement.Close} {
		if endpoint.IsEmpty() || resolver.IsAbsoluteInstant(endpoint) {
			continue
		}
		if _, err := resolver.ResolveToInstant(endpoint.Text); err != nil {
			uc.Log.Warn("openHoursUsecase.compute "+constvars.ErrDevUnresolvableStatement,
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointValueKey, endpoint.Text),
				zap.Error(err),
			)
		}
	}
}
