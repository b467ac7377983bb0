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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type OpenHoursController struct {
	Log              *zap.Logger
	OpenHoursUsecase contracts.OpenHoursUsecase
	timeout          time.Duration
}

func NewOpenHoursController(logger *zap.Logger, internalConfig *config.InternalConfig, openHoursUsecase contracts.OpenHoursUsecase) *OpenHoursController {
	return &OpenHoursController{
		Log:              logger,
		OpenHoursUsecase: openHoursUsecase,
		timeout:          requestTimeout(internalConfig.App.RequestTimeoutInSeconds),
	}
}

func (ctrl *OpenHoursController) Compute(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("OpenHoursController.Compute requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("OpenHoursController.Compute called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ComputeOpenHours)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("OpenHoursController.Compute error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeComputeOpenHoursRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("OpenHoursController.Compute validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout)
	defer cancel()

	response, err := ctrl.OpenHoursUsecase.Compute(ctx, request)
	if err != nil {
		ctrl.Log.Error("OpenHoursController.Compute error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("OpenHoursController.Compute succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRangeCountKey, len(response.Ranges)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ComputeOpenHoursSuccessMessage, response)
}
