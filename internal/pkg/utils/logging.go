package utils

import (
	"context"
	"time"

	"openhours-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogOperation runs fn and logs its duration and outcome under operation.
func LogOperation(logger *zap.Logger, operation string, requestID string, fn func() error, fields ...zap.Field) error {
	start := time.Now()

	logger.Debug("Operation started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
	)

	err := fn()

	allFields := append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}, fields...)

	if err != nil {
		logger.Error("Operation failed", append(allFields, zap.Error(err))...)
		return err
	}

	logger.Info("Operation completed", allFields...)
	return nil
}

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("business_event", event),
		zap.Time("timestamp", time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Info("Business event occurred", allFields...)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
