package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/delivery/http/controllers"
	"openhours-service/internal/app/delivery/http/middlewares"
	openHours "openhours-service/internal/app/services/core/open_hours"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/dto/responses"
	"openhours-service/internal/pkg/exceptions"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const testScheduleID = "65f1a2b3c4d5e6f708091a2b"

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) Create(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Schedule)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) FindAll(ctx context.Context, request *requests.Pagination) ([]responses.Schedule, int, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).([]responses.Schedule)
	return response, args.Int(1), args.Error(2)
}

func (m *MockScheduleUsecase) FindByID(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	response, _ := args.Get(0).(*responses.Schedule)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) Update(ctx context.Context, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Schedule)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) Delete(ctx context.Context, scheduleID string) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

func (m *MockScheduleUsecase) GetScheduleHours(ctx context.Context, request *requests.ScheduleHours) (*responses.ScheduleHours, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.ScheduleHours)
	return response, args.Error(1)
}

func (m *MockScheduleUsecase) RefreshScheduleHours(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total   int    `json:"total"`
		NextURL string `json:"next_url"`
	} `json:"pagination"`
}

func newTestRouter(t *testing.T, scheduleUsecase *MockScheduleUsecase) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Timezone:                   "UTC",
			EndpointPrefix:             "api",
			Version:                    "v1",
			MaxRequests:                100,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
			ComputeRequestsPerSecond:   100,
			ComputeBlockTimeInSeconds:  1,
		},
		OpenHours: config.AppOpenHours{
			DefaultInterval: 30,
			DefaultFormat:   "g:ia",
		},
	}

	openHoursUsecase, err := openHours.NewOpenHoursUsecase(internalConfig, logger)
	require.NoError(t, err)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewOpenHoursController(logger, internalConfig, openHoursUsecase),
		controllers.NewScheduleController(logger, internalConfig, scheduleUsecase),
	)
	return router
}

func serve(router http.Handler, method, path string, body []byte) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.RemoteAddr = "192.0.2.1:4321"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var response envelope
	_ = json.Unmarshal(rr.Body.Bytes(), &response)
	return rr, response
}

func TestOpenHoursRouter_Compute(t *testing.T) {
	router := newTestRouter(t, new(MockScheduleUsecase))

	t.Run("Computes ranges", func(t *testing.T) {
		body := []byte(`{
			"interval": 30,
			"open_hours": [
				{"open": "9:00", "close": "12:00", "description": "Morning"},
				{"open": "13:00", "close": "17:00", "description": "Afternoon"}
			]
		}`)

		rr, response := serve(router, http.MethodPost, "/api/v1/open-hours/compute", body)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, response.Success)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))

		var hours responses.OpenHours
		require.NoError(t, json.Unmarshal(response.Data, &hours))
		assert.Equal(t, "partial", hours.Status)
		require.Len(t, hours.Ranges, 2)
		assert.Equal(t, "9:00am - 12:00pm (Morning); 1:00pm - 5:00pm (Afternoon)", hours.Text)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		rr, response := serve(router, http.MethodPost, "/api/v1/open-hours/compute", []byte(`{"open_hours": [`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, response.Success)
	})

	t.Run("Interval not dividing the day", func(t *testing.T) {
		rr, response := serve(router, http.MethodPost, "/api/v1/open-hours/compute", []byte(`{"interval": 7}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, response.Message, "interval")
	})

	t.Run("Wrong method", func(t *testing.T) {
		rr, _ := serve(router, http.MethodGet, "/api/v1/open-hours/compute", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestScheduleRouter(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		scheduleUsecase := new(MockScheduleUsecase)
		router := newTestRouter(t, scheduleUsecase)
		scheduleUsecase.On("Create", mock.Anything, mock.MatchedBy(func(request *requests.CreateSchedule) bool {
			return request.Name == "Front desk" && len(request.OpenHours) == 1
		})).Return(&responses.Schedule{ID: testScheduleID, Name: "Front desk"}, nil)

		body := []byte(`{"name": "  Front desk ", "open_hours": [{"open": "9:00", "close": "17:00"}]}`)
		rr, response := serve(router, http.MethodPost, "/api/v1/schedules/", body)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, constvars.CreateScheduleSuccessMessage, response.Message)
		scheduleUsecase.AssertExpectations(t)
	})

	t.Run("Create without name", func(t *testing.T) {
		scheduleUsecase := new(MockScheduleUsecase)
		router := newTestRouter(t, scheduleUsecase)

		rr, _ := serve(router, http.MethodPost, "/api/v1/schedules/", []byte(`{"open_hours": []}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		scheduleUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("List with pagination", func(t *testing.T) {
		scheduleUsecase := new(MockScheduleUsecase)
		router := newTestRouter(t, scheduleUsecase)
		scheduleUsecase.On("FindAll", mock.Anything, &requests.Pagination{Page: 1, PageSize: 1}).
			Return([]responses.Schedule{{ID: testScheduleID}}, 3, nil)

		rr, response := serve(router, http.MethodGet, "/api/v1/schedules/?page=1&page_size=1", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, response.Pagination)
		assert.Equal(t, 3, response.Pagination.Total)
		assert.Contains(t, response.Pagination.NextURL, "page=2")
	})

	t.Run("Invalid schedule id", func(t *testing.T) {
		scheduleUsecase := new(MockScheduleUsecase)
		router := newTestRouter(t, scheduleUsecase)

		rr, _ := serve(router, http.MethodGet, "/api/v1/schedules/not-an-id", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		scheduleUsecase.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown schedule", func(t *testing.T) {
		scheduleUsecase := new(MockScheduleUsecase)
		router := newTestRouter(t, scheduleUsecase)
		scheduleUsecase.On("FindByID", mock.Anything, testScheduleID).
			Return(nil, exceptions.ErrScheduleNotFound(mongo.ErrNoDocuments, testScheduleID))

		rr, response := serve(router, http.MethodGet, "/api/v1/schedules/"+testScheduleID, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, constvars.ErrClientScheduleNotFound, response.Message)
	})

	t.Run("Update passes the path id", func(t *testing.T) {
		scheduleUsecase := new(MockScheduleUsecase)
		router := newTestRouter(t, scheduleUsecase)
		scheduleUsecase.On("Update", mock.Anything, mock.MatchedBy(func(request *requests.UpdateSchedule) bool {
			return request.ScheduleID == testScheduleID && request.Name == "Back desk"
		})).Return(&responses.Schedule{ID: testScheduleID, Name: "Back desk"}, nil)

		rr, _ := serve(router, http.MethodPut, "/api/v1/schedules/"+testScheduleID, []byte(`{"name": "Back desk"}`))
		assert.Equal(t, http.StatusOK, rr.Code)
		scheduleUsecase.AssertExpectations(t)
	})

	t.Run("Delete", func(t *testing.T) {
		scheduleUsecase := new(MockScheduleUsecase)
		router := newTestRouter(t, scheduleUsecase)
		scheduleUsecase.On("Delete", mock.Anything, testScheduleID).Return(nil)

		rr, response := serve(router, http.MethodDelete, "/api/v1/schedules/"+testScheduleID, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.DeleteScheduleSuccessMessage, response.Message)
	})

	t.Run("Hours for a date", func(t *testing.T) {
		scheduleUsecase := new(MockScheduleUsecase)
		router := newTestRouter(t, scheduleUsecase)
		scheduleUsecase.On("GetScheduleHours", mock.Anything, &requests.ScheduleHours{ScheduleID: testScheduleID, Date: "2024-03-05"}).
			Return(&responses.ScheduleHours{
				ScheduleID: testScheduleID,
				OpenHours:  responses.OpenHours{Status: "closed", Text: "Closed", Date: "2024-03-05"},
			}, nil)

		rr, response := serve(router, http.MethodGet, "/api/v1/schedules/"+testScheduleID+"/hours?date=2024-03-05", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var hours responses.ScheduleHours
		require.NoError(t, json.Unmarshal(response.Data, &hours))
		assert.Equal(t, "Closed", hours.Text)
		assert.Equal(t, "2024-03-05", hours.Date)
	})
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t, new(MockScheduleUsecase))

	rr, response := serve(router, http.MethodGet, "/api/v1/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, response.Success)
}
