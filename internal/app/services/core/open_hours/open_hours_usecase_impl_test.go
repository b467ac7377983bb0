package openHours

import (
	"context"
	"net/http"
	"openhours-service/internal/app/config"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/openhours"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{Timezone: "UTC"},
		OpenHours: config.AppOpenHours{
			DefaultInterval: 30,
			DefaultFormat:   "g:ia",
		},
	}
}

func newTestUsecase(cfg *config.InternalConfig, logger *zap.Logger) *openHoursUsecase {
	return newOpenHoursUsecase(cfg, logger, time.UTC, func() time.Time { return fixedNow })
}

func statement(open, close, description string) requests.HoursStatement {
	return requests.HoursStatement{
		Open:        openhours.Text(open),
		Close:       openhours.Text(close),
		Description: description,
	}
}

func TestNewOpenHoursUsecase(t *testing.T) {
	t.Run("Known timezone", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.App.Timezone = "Asia/Jakarta"

		uc, err := NewOpenHoursUsecase(cfg, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "Asia/Jakarta", uc.Location().String())
	})

	t.Run("Unknown timezone", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.App.Timezone = "Mars/Olympus_Mons"

		uc, err := NewOpenHoursUsecase(cfg, zap.NewNop())
		assert.Error(t, err)
		assert.Nil(t, uc)
	})
}

func TestCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("Open and control hours", func(t *testing.T) {
		uc := newTestUsecase(newTestConfig(), zap.NewNop())

		response, err := uc.Compute(ctx, &requests.ComputeOpenHours{
			OpenHours:    []requests.HoursStatement{statement("8:00", "18:00", "Shop")},
			ControlHours: []requests.HoursStatement{statement("9:00", "17:00", "")},
		})
		require.NoError(t, err)

		assert.Equal(t, 30, response.Interval)
		assert.Equal(t, "g:ia", response.Format)
		assert.Equal(t, "partial", response.Status)
		assert.Empty(t, response.Date)
		require.Len(t, response.Ranges, 1)
		assert.Equal(t, "9:00am", response.Ranges[0].Open)
		assert.Equal(t, "5:00pm", response.Ranges[0].Close)
		assert.Equal(t, "9:00am - 5:00pm (Shop)", response.Text)
	})

	t.Run("No statements", func(t *testing.T) {
		uc := newTestUsecase(newTestConfig(), zap.NewNop())

		response, err := uc.Compute(ctx, &requests.ComputeOpenHours{})
		require.NoError(t, err)
		assert.Equal(t, "closed", response.Status)
		assert.NotNil(t, response.Ranges)
		assert.Empty(t, response.Ranges)
		assert.Equal(t, "Closed", response.Text)
	})

	t.Run("Request overrides interval and format", func(t *testing.T) {
		uc := newTestUsecase(newTestConfig(), zap.NewNop())

		response, err := uc.Compute(ctx, &requests.ComputeOpenHours{
			Interval:  15,
			Format:    "H:i",
			OpenHours: []requests.HoursStatement{statement("9:15", "9:45", "")},
		})
		require.NoError(t, err)
		assert.Equal(t, 15, response.Interval)
		assert.Equal(t, "H:i", response.Format)
		require.Len(t, response.Ranges, 1)
		assert.Equal(t, "09:15", response.Ranges[0].Open)
		assert.Equal(t, "09:45", response.Ranges[0].Close)
	})

	t.Run("Format without time characters keeps default", func(t *testing.T) {
		observed, logs := observer.New(zapcore.WarnLevel)
		uc := newTestUsecase(newTestConfig(), zap.New(observed))

		response, err := uc.Compute(ctx, &requests.ComputeOpenHours{Format: "xyz"})
		require.NoError(t, err)
		assert.Equal(t, "g:ia", response.Format)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("Invalid interval", func(t *testing.T) {
		uc := newTestUsecase(newTestConfig(), zap.NewNop())

		response, err := uc.Compute(ctx, &requests.ComputeOpenHours{Interval: 7})
		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.ErrorIs(t, err, openhours.ErrInvalidInterval)
	})

	t.Run("Track date from request", func(t *testing.T) {
		uc := newTestUsecase(newTestConfig(), zap.NewNop())

		response, err := uc.Compute(ctx, &requests.ComputeOpenHours{
			TrackDate: true,
			OpenHours: []requests.HoursStatement{statement("9:00", "17:00", "")},
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", response.Date)
		require.Len(t, response.Ranges, 1)
		require.NotNil(t, response.Ranges[0].OpenAt)
		assert.Equal(t, time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC).Unix(), *response.Ranges[0].OpenAt)
	})

	t.Run("Track date from config", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.OpenHours.TrackDate = true
		uc := newTestUsecase(cfg, zap.NewNop())

		response, err := uc.Compute(ctx, &requests.ComputeOpenHours{
			OpenHours: []requests.HoursStatement{statement("9:00", "17:00", "")},
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", response.Date)
	})

	t.Run("Unresolvable endpoint closes the day and warns", func(t *testing.T) {
		observed, logs := observer.New(zapcore.WarnLevel)
		uc := newTestUsecase(newTestConfig(), zap.New(observed))

		response, err := uc.Compute(ctx, &requests.ComputeOpenHours{
			OpenHours: []requests.HoursStatement{
				statement("9:00", "17:00", ""),
				statement("not a time", "17:00", "Broken"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "closed", response.Status)
		assert.Empty(t, response.Ranges)
		assert.Equal(t, 1, logs.FilterField(zap.String("endpoint_value", "not a time")).Len())
	})

	t.Run("Cancelled context", func(t *testing.T) {
		uc := newTestUsecase(newTestConfig(), zap.NewNop())
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		response, err := uc.Compute(cancelled, &requests.ComputeOpenHours{})
		assert.Nil(t, response)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestComputeOn(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newTestConfig(), zap.NewNop())
	request := &requests.ComputeOpenHours{
		OpenHours: []requests.HoursStatement{statement("9:00", "0:00", "Late")},
	}

	t.Run("Anchors to the given day", func(t *testing.T) {
		day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

		response, err := uc.ComputeOn(ctx, request, day)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05", response.Date)
		require.Len(t, response.Ranges, 1)
		require.NotNil(t, response.Ranges[0].CloseAt)
		assert.Equal(t, time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC).Unix(), *response.Ranges[0].CloseAt)
	})

	t.Run("Zero day means today", func(t *testing.T) {
		response, err := uc.ComputeOn(ctx, request, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", response.Date)
	})
}
