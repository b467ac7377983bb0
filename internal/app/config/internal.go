package config

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	OpenHours AppOpenHours `mapstructure:"openhours"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	ComputeRequestsPerSecond   int    `mapstructure:"compute_requests_per_second"`
	ComputeBlockTimeInSeconds  int    `mapstructure:"compute_block_time_in_seconds"`
}

type AppOpenHours struct {
	DefaultInterval int    `mapstructure:"default_interval"`
	DefaultFormat   string `mapstructure:"default_format"`
	TrackDate       bool   `mapstructure:"track_date"`
	CacheTTLInHours int    `mapstructure:"cache_ttl_in_hours"`
	// WorkerCronSpec is the cron expression of the cache warm worker, e.g. "5 0 * * *"
	WorkerCronSpec         string `mapstructure:"worker_cron_spec"`
	WorkerLockTTLInSeconds int    `mapstructure:"worker_lock_ttl_in_seconds"`
}
