package claims

import (
	"context"
	"errors"
	"sync"
	"time"

	"claimgate-service/internal/app/config"
	"claimgate-service/internal/app/contracts"
	"claimgate-service/internal/app/models"
	"claimgate-service/internal/pkg/constvars"
	"claimgate-service/internal/pkg/dto/requests"
	"claimgate-service/internal/pkg/dto/responses"
	"claimgate-service/internal/pkg/edi837"
	"claimgate-service/internal/pkg/exceptions"
	"claimgate-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type claimUsecase struct {
	Log             *zap.Logger
	ClaimRepository contracts.ClaimRepository
	Gateway         contracts.ClaimGateway
	InternalConfig  *config.InternalConfig
}

var (
	claimUsecaseInstance *claimUsecase
	onceClaimUsecase     sync.Once
)

func NewClaimUsecase(
	logger *zap.Logger,
	claimRepository contracts.ClaimRepository,
	gateway contracts.ClaimGateway,
	internalConfig *config.InternalConfig,
) contracts.ClaimUsecase {
	onceClaimUsecase.Do(func() {
		claimUsecaseInstance = &claimUsecase{
			Log:             logger,
			ClaimRepository: claimRepository,
			Gateway:         gateway,
			InternalConfig:  internalConfig,
		}
	})
	return claimUsecaseInstance
}

func (uc *claimUsecase) ValidateClaim(ctx context.Context, request *requests.ValidateClaim) (*responses.ValidateClaim, error) {
	findings := edi837.Validate(&request.Claim)
	return &responses.ValidateClaim{
		Valid:    !edi837.HasErrors(findings),
		Findings: findings,
	}, nil
}

func (uc *claimUsecase) SubmitClaim(ctx context.Context, request *requests.SubmitClaim) (*responses.SubmitClaim, error) {
	uc.Log.Info("claimUsecase.SubmitClaim called",
		zap.String(constvars.LoggingClaimIDKey, request.Claim.Claim.ClaimID),
	)

	result, findings := edi837.Encode(&request.Claim, time.Now())
	if result == nil {
		first := "claim failed validation"
		for _, finding := range findings {
			if finding.Severity == edi837.SeverityError {
				first = finding.Field + ": " + finding.Message
				break
			}
		}
		return nil, exceptions.ErrClaimValidation(errors.New(first))
	}

	submission := &models.ClaimSubmission{
		ID:                       utils.GenerateSubmissionID(),
		ClaimID:                  request.Claim.Claim.ClaimID,
		SubmitterID:              request.Claim.Submitter.ID,
		BillingNPI:               request.Claim.BillingProvider.NPI,
		Status:                   constvars.SubmissionStatusEncoded,
		FileName:                 result.FileName,
		InterchangeControlNumber: result.InterchangeControlNumber,
		GroupControlNumber:       result.GroupControlNumber,
		TransactionControlNumber: result.TransactionControlNumber,
		SegmentCount:             result.SegmentCount,
		Compact:                  result.Compact,
		Readable:                 result.Readable,
		TotalCharge:              request.Claim.Claim.TotalCharge.StringFixed(2),
		Warnings:                 persistFindings(result.Warnings),
	}
	submission.SetCreatedAtUpdatedAt()

	submissionID, err := uc.ClaimRepository.CreateSubmission(ctx, submission)
	if err != nil {
		return nil, err
	}

	status := constvars.SubmissionStatusEncoded
	if !request.DryRun {
		if err := uc.Gateway.Transmit(ctx, result.FileName, []byte(result.Compact)); err != nil {
			if updateErr := uc.ClaimRepository.UpdateSubmissionStatus(ctx, submissionID, constvars.SubmissionStatusFailed); updateErr != nil {
				uc.Log.Error("claimUsecase.SubmitClaim failed to mark submission failed",
					zap.String("submission_id", submissionID),
					zap.Error(updateErr),
				)
			}
			return nil, err
		}
		status = constvars.SubmissionStatusSubmitted
		if err := uc.ClaimRepository.UpdateSubmissionStatus(ctx, submissionID, status); err != nil {
			return nil, err
		}
	}

	return &responses.SubmitClaim{
		SubmissionID:             submissionID,
		Status:                   status,
		FileName:                 result.FileName,
		InterchangeControlNumber: result.InterchangeControlNumber,
		TransactionControlNumber: result.TransactionControlNumber,
		SegmentCount:             result.SegmentCount,
		Compact:                  result.Compact,
		Readable:                 result.Readable,
		Warnings:                 result.Warnings,
	}, nil
}

func (uc *claimUsecase) GetSubmissionByID(ctx context.Context, submissionID string) (*responses.ClaimSubmission, error) {
	submission, err := uc.ClaimRepository.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, exceptions.ErrClaimNotExist(nil)
	}

	return &responses.ClaimSubmission{
		SubmissionID: submission.ID,
		ClaimID:      submission.ClaimID,
		Status:       submission.Status,
		FileName:     submission.FileName,
		SubmittedAt:  submission.UpdatedAt.Format(time.RFC3339),
		Compact:      submission.Compact,
		Readable:     submission.Readable,
	}, nil
}

func persistFindings(findings []edi837.Finding) []models.ClaimFinding {
	out := make([]models.ClaimFinding, 0, len(findings))
	for _, finding := range findings {
		out = append(out, models.ClaimFinding{
			Field:    finding.Field,
			Message:  finding.Message,
			Severity: string(finding.Severity),
		})
	}
	return out
}
