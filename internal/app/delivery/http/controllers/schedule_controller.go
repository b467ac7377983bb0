package controllers

import (
	"context"
	"net/http"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/dto/requests"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
	timeout         time.Duration
}

func NewScheduleController(logger *zap.Logger, internalConfig *config.InternalConfig, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
		timeout:         requestTimeout(internalConfig.App.RequestTimeoutInSeconds),
	}
}

func (ctrl *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.CreateSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScheduleController.CreateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ScheduleController.CreateSchedule error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateScheduleRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScheduleController.CreateSchedule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.CreateSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.CreateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateScheduleSuccessMessage, response)
}

func (ctrl *ScheduleController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScheduleController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout)
	defer cancel()

	result, total, err := ctrl.ScheduleUsecase.FindAll(ctx, request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)

	ctrl.Log.Info("ScheduleController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingScheduleCountKey, len(result)),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetSchedulesSuccessMessage, pagination, result)
}

func (ctrl *ScheduleController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	scheduleID, ok := ctrl.scheduleIDParam(w, r, requestID, "FindByID")
	if !ok {
		return
	}
	ctrl.Log.Info("ScheduleController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.FindByID(ctx, scheduleID)
	if err != nil {
		ctrl.Log.Error("ScheduleController.FindByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, response)
}

func (ctrl *ScheduleController) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.UpdateSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	scheduleID, ok := ctrl.scheduleIDParam(w, r, requestID, "UpdateSchedule")
	if !ok {
		return
	}
	ctrl.Log.Info("ScheduleController.UpdateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	request := new(requests.UpdateSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ScheduleController.UpdateSchedule error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ScheduleID = scheduleID

	utils.SanitizeUpdateScheduleRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScheduleController.UpdateSchedule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.Update(ctx, request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.UpdateSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.UpdateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateScheduleSuccessMessage, response)
}

func (ctrl *ScheduleController) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.DeleteSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	scheduleID, ok := ctrl.scheduleIDParam(w, r, requestID, "DeleteSchedule")
	if !ok {
		return
	}
	ctrl.Log.Info("ScheduleController.DeleteSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout)
	defer cancel()

	err := ctrl.ScheduleUsecase.Delete(ctx, scheduleID)
	if err != nil {
		ctrl.Log.Error("ScheduleController.DeleteSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.DeleteSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteScheduleSuccessMessage, nil)
}

// GetScheduleHours answers GET /schedules/{scheduleID}/hours?date=YYYY-MM-DD.
func (ctrl *ScheduleController) GetScheduleHours(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.GetScheduleHours requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	scheduleID, ok := ctrl.scheduleIDParam(w, r, requestID, "GetScheduleHours")
	if !ok {
		return
	}
	request := &requests.ScheduleHours{
		ScheduleID: scheduleID,
		Date:       r.URL.Query().Get(constvars.QueryParamDate),
	}
	ctrl.Log.Info("ScheduleController.GetScheduleHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.GetScheduleHours(ctx, request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.GetScheduleHours error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.GetScheduleHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRangeCountKey, len(response.Ranges)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleHoursSuccessMessage, response)
}

func (ctrl *ScheduleController) scheduleIDParam(w http.ResponseWriter, r *http.Request, requestID, method string) (string, bool) {
	scheduleID := chi.URLParam(r, constvars.URLParamScheduleID)
	if err := utils.ValidateUrlParamID(scheduleID); err != nil {
		ctrl.Log.Error("ScheduleController."+method+" invalid schedule id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamScheduleID))
		return "", false
	}
	return scheduleID, true
}
