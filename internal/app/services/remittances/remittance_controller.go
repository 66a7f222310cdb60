package remittances

import (
	"context"
	"net/http"
	"sync"
	"time"

	"claimgate-service/internal/app/contracts"
	"claimgate-service/internal/pkg/constvars"
	"claimgate-service/internal/pkg/dto/requests"
	"claimgate-service/internal/pkg/exceptions"
	"claimgate-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RemittanceController struct {
	Log               *zap.Logger
	RemittanceUsecase contracts.RemittanceUsecase
}

var (
	remittanceControllerInstance *RemittanceController
	onceRemittanceController     sync.Once
)

func NewRemittanceController(logger *zap.Logger, remittanceUsecase contracts.RemittanceUsecase) *RemittanceController {
	onceRemittanceController.Do(func() {
		remittanceControllerInstance = &RemittanceController{
			Log:               logger,
			RemittanceUsecase: remittanceUsecase,
		}
	})
	return remittanceControllerInstance
}

func (ctrl *RemittanceController) DecodeRemittance(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RemittanceController.DecodeRemittance requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("RemittanceController.DecodeRemittance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.DecodeRemittance)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("RemittanceController.DecodeRemittance error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RemittanceController.DecodeRemittance validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RemittanceUsecase.DecodeRemittance(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessDecodeRemittance, response)
}

func (ctrl *RemittanceController) SummarizeRemittance(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RemittanceController.SummarizeRemittance requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("RemittanceController.SummarizeRemittance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SummarizeRemittance)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("RemittanceController.SummarizeRemittance error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RemittanceController.SummarizeRemittance validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.RemittanceUsecase.SummarizeRemittance(ctx, request)
	if err != nil {
		ctrl.Log.Error("RemittanceController.SummarizeRemittance error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessSummarize, response)
}

func (ctrl *RemittanceController) AcceptRemittance(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RemittanceController.AcceptRemittance requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("RemittanceController.AcceptRemittance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.AcceptRemittance)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("RemittanceController.AcceptRemittance error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RemittanceController.AcceptRemittance validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RemittanceUsecase.AcceptRemittance(ctx, request)
	if err != nil {
		ctrl.Log.Error("RemittanceController.AcceptRemittance error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.SuccessEnqueueRemit, response)
}

func (ctrl *RemittanceController) GetReportByTrace(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("RemittanceController.GetReportByTrace requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	traceNumber := chi.URLParam(r, "traceNumber")
	ctrl.Log.Info("RemittanceController.GetReportByTrace called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTraceNumberKey, traceNumber),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RemittanceUsecase.GetReportByTrace(ctx, traceNumber)
	if err != nil {
		ctrl.Log.Error("RemittanceController.GetReportByTrace error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetReport, response)
}
