package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s",
	"max":           "must be at most %s",
	"oneof":         "must be one of %s",
	"dive":          "is invalid",
	"slot_interval": "must be a positive number of minutes that divides a day evenly",
	"hours_format":  "must contain at least one time format character",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientScheduleNotFound              = "schedule not found"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientInvalidInterval               = "interval must be a positive number of minutes that divides a day evenly"
	ErrClientInvalidDate                   = "date must use the YYYY-MM-DD layout"
	ErrClientRouteNotFound                 = "the requested resource does not exist"
	ErrClientMethodNotAllowed              = "method is not allowed on this resource"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevMissingRequestID        = "request id not found in context"
	ErrDevRouteNotFound           = "route not found"
	ErrDevMethodNotAllowed        = "method not allowed"
	ErrDevCannotParseJSON         = "cannot parse JSON"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevValidationFailed        = "validation failed"
	ErrDevURLParamIDValidation    = "URL param %s is not valid"
	ErrDevInvalidRequestPayload   = "invalid request payload"
	ErrDevScheduleNotFound        = "schedule not found"
	ErrDevInvalidInterval         = "interval does not divide the day into whole slots"
	ErrDevCannotParseDate         = "cannot parse date"
	ErrDevServerDeadlineExceeded  = "deadline exceeded"
	ErrDevServerPanicRecovered    = "recovered from panic"
	ErrDevDBFailedToInsert        = "failed to insert document into database"
	ErrDevDBFailedToUpdate        = "failed to update document into database"
	ErrDevDBFailedToDelete        = "failed to delete document from database"
	ErrDevDBFailedToFind          = "failed when do find document on database"
	ErrDevDBFailedToIterate       = "failed to iterate documents from database"
	ErrDevDBFailedToCount         = "failed to count documents on database"
	ErrDevDBStringNotObjectID     = "given ID is not valid object ID"
	ErrDevDBFailedToCreateIndex   = "failed to create index on database"
	ErrDevRedisSet                = "failed to set value into redis"
	ErrDevRedisGet                = "failed to get value of key %s from redis"
	ErrDevRedisDelete             = "failed to delete key from redis"
	ErrDevRedisScan               = "failed to scan keys from redis"
	ErrDevRedisExpire             = "failed to refresh key expiration in redis"
	ErrDevRedisUnlock             = "failed to release lock in redis"
	ErrDevRedisIncrement          = "failed to increment counter in redis"
	ErrDevRateLimitExceeded       = "request limit exceeded"
	ErrDevWorkerScheduleFailed    = "failed to schedule worker job"
	ErrDevUnresolvableStatement   = "statement endpoint could not be resolved"
	ErrDevCannotLoadTimezone      = "cannot load timezone"
	ErrDevCannotBuildOpenHours    = "cannot build open hours calculator"
	ErrDevCannotUnmarshalConfig   = "cannot unmarshal configuration"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
