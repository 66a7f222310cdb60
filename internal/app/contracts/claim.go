package contracts

import (
	"context"

	"claimgate-service/internal/app/models"
	"claimgate-service/internal/pkg/dto/requests"
	"claimgate-service/internal/pkg/dto/responses"
)

type ClaimUsecase interface {
	ValidateClaim(ctx context.Context, request *requests.ValidateClaim) (*responses.ValidateClaim, error)
	SubmitClaim(ctx context.Context, request *requests.SubmitClaim) (*responses.SubmitClaim, error)
	GetSubmissionByID(ctx context.Context, submissionID string) (*responses.ClaimSubmission, error)
}

type ClaimRepository interface {
	CreateSubmission(ctx context.Context, submission *models.ClaimSubmission) (string, error)
	FindSubmissionByID(ctx context.Context, submissionID string) (*models.ClaimSubmission, error)
	UpdateSubmissionStatus(ctx context.Context, submissionID, status string) error
}

// ClaimGateway transmits encoded claim files to the payer drop location.
type ClaimGateway interface {
	Transmit(ctx context.Context, fileName string, payload []byte) error
}

// PayerGateway bundles both directions of payer file exchange: outbound
// claim transmission and the inbound remittance drop.
type PayerGateway interface {
	ClaimGateway
	RemittanceSource
}
