package constvars

type ContextKey string

const (
	ResourceOpenHours = "open-hours"
	ResourceSchedules = "schedules"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "OPNHRS_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDateLayout          = "2006-01-02"
)

const (
	URLParamScheduleID = "scheduleID"
)

const (
	QueryParamPage     = "page"
	QueryParamPageSize = "page_size"
	QueryParamDate     = "date"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
