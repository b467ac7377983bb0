package config

import (
	"fmt"
	"openhours-service/internal/pkg/openhours"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

var onceDefaults sync.Once

func init() {
	godotenv.Load()
}

// setDefaults binds every key to its environment variable, e.g. app.port to APP_PORT.
func setDefaults() {
	onceDefaults.Do(func() {
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		viper.SetDefault("app.env", "development")
		viper.SetDefault("app.port", ":8080")
		viper.SetDefault("app.version", "v1")
		viper.SetDefault("app.address", "localhost")
		viper.SetDefault("app.timezone", "Asia/Jakarta")
		viper.SetDefault("app.endpoint_prefix", "api")
		viper.SetDefault("app.max_requests", 100)
		viper.SetDefault("app.shutdown_timeout_in_seconds", 10)
		viper.SetDefault("app.request_timeout_in_seconds", 10)
		viper.SetDefault("app.request_body_limit_in_megabyte", 1)
		viper.SetDefault("app.compute_requests_per_second", 20)
		viper.SetDefault("app.compute_block_time_in_seconds", 30)

		viper.SetDefault("openhours.default_interval", openhours.DefaultInterval)
		viper.SetDefault("openhours.default_format", openhours.DefaultFormat)
		viper.SetDefault("openhours.track_date", false)
		viper.SetDefault("openhours.cache_ttl_in_hours", 24)
		viper.SetDefault("openhours.worker_cron_spec", "5 0 * * *")
		viper.SetDefault("openhours.worker_lock_ttl_in_seconds", 120)

		viper.SetDefault("mongodb.host", "localhost")
		viper.SetDefault("mongodb.port", "27017")
		viper.SetDefault("mongodb.db_name", "openhours")
		viper.SetDefault("mongodb.username", "")
		viper.SetDefault("mongodb.password", "")

		viper.SetDefault("redis.host", "localhost")
		viper.SetDefault("redis.port", "6379")
		viper.SetDefault("redis.password", "")
		viper.SetDefault("redis.db", 0)

		viper.SetDefault("logger.level", "info")
		viper.SetDefault("logger.output_file_name", "logger.log")
		viper.SetDefault("logger.output_error_file_name", "logger_error.log")
	})
}

func NewInternalConfig() (*InternalConfig, error) {
	setDefaults()

	var internalConfig InternalConfig
	if err := viper.Unmarshal(&internalConfig); err != nil {
		return nil, fmt.Errorf("cannot unmarshal internal config: %w", err)
	}
	if err := internalConfig.Validate(); err != nil {
		return nil, err
	}
	return &internalConfig, nil
}

func NewDriverConfig() (*DriverConfig, error) {
	setDefaults()

	var driverConfig DriverConfig
	if err := viper.Unmarshal(&driverConfig); err != nil {
		return nil, fmt.Errorf("cannot unmarshal driver config: %w", err)
	}
	return &driverConfig, nil
}

func (c *InternalConfig) Validate() error {
	if !openhours.ValidInterval(c.OpenHours.DefaultInterval) {
		return fmt.Errorf("openhours.default_interval %d: %w", c.OpenHours.DefaultInterval, openhours.ErrInvalidInterval)
	}
	if openhours.FilterFormat(c.OpenHours.DefaultFormat) == "" {
		return fmt.Errorf("openhours.default_format %q has no time format characters", c.OpenHours.DefaultFormat)
	}
	if _, err := cron.ParseStandard(c.OpenHours.WorkerCronSpec); err != nil {
		return fmt.Errorf("openhours.worker_cron_spec %q: %w", c.OpenHours.WorkerCronSpec, err)
	}
	return nil
}
