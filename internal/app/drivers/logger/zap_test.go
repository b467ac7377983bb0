package logger

import (
	"openhours-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildZapConfig(t *testing.T) {
	driverConfig := &config.DriverConfig{
		Logger: config.DriverLogger{
			Level:               "warn",
			OutputFileName:      "app.log",
			OutputErrorFileName: "app_error.log",
		},
	}

	t.Run("Development", func(t *testing.T) {
		internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}
		zapConfig := buildZapConfig(driverConfig, internalConfig)

		assert.Equal(t, zap.WarnLevel, zapConfig.Level.Level())
		assert.True(t, zapConfig.Development)
		assert.Equal(t, []string{"stdout"}, zapConfig.OutputPaths)
		assert.Equal(t, "json", zapConfig.Encoding)
	})

	t.Run("Production", func(t *testing.T) {
		internalConfig := &config.InternalConfig{App: config.App{Env: "production"}}
		zapConfig := buildZapConfig(driverConfig, internalConfig)

		assert.False(t, zapConfig.Development)
		assert.Equal(t, []string{"app.log"}, zapConfig.OutputPaths)
		assert.Equal(t, []string{"stderr", "app_error.log"}, zapConfig.ErrorOutputPaths)
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		internalConfig := &config.InternalConfig{App: config.App{Env: "staging"}}
		zapConfig := buildZapConfig(&config.DriverConfig{}, internalConfig)

		assert.Equal(t, zap.InfoLevel, zapConfig.Level.Level())
	})
}
