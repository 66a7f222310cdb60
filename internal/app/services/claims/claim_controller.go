package claims

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

type ClaimController struct {
	Log          *zap.Logger
	ClaimUsecase contracts.ClaimUsecase
}

var (
	claimControllerInstance *ClaimController
	onceClaimController     sync.Once
)

func NewClaimController(logger *zap.Logger, claimUsecase contracts.ClaimUsecase) *ClaimController {
	onceClaimController.Do(func() {
		claimControllerInstance = &ClaimController{
			Log:          logger,
			ClaimUsecase: claimUsecase,
		}
	})
	return claimControllerInstance
}

func (ctrl *ClaimController) ValidateClaim(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ClaimController.ValidateClaim requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ClaimController.ValidateClaim called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ValidateClaim)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ClaimController.ValidateClaim error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ClaimController.ValidateClaim validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ClaimUsecase.ValidateClaim(ctx, request)
	if err != nil {
		ctrl.Log.Error("ClaimController.ValidateClaim error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessValidateClaim, response)
}

func (ctrl *ClaimController) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ClaimController.SubmitClaim requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ClaimController.SubmitClaim called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SubmitClaim)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ClaimController.SubmitClaim error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ClaimController.SubmitClaim validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ClaimUsecase.SubmitClaim(ctx, request)
	if err != nil {
		ctrl.Log.Error("ClaimController.SubmitClaim error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessSubmitClaim, response)
}

func (ctrl *ClaimController) GetSubmissionByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ClaimController.GetSubmissionByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	submissionID := chi.URLParam(r, "submissionID")
	ctrl.Log.Info("ClaimController.GetSubmissionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("submission_id", submissionID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ClaimUsecase.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		ctrl.Log.Error("ClaimController.GetSubmissionByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetClaim, response)
}
