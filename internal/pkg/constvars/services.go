package constvars

const (
	MongoCollectionSchedules = "schedules"
)

const (
	RedisKeyScheduleHoursFormat  = "openhours:schedule:%s:v%d:%s"
	RedisKeyScheduleHoursPrefix  = "openhours:schedule:%s:*"
	RedisKeyScheduleHoursVersion = "openhours:schedule-version:%s"
	RedisKeyWarmWorkerLeader     = "openhours:warmer:leader"
)
