package contracts

import (
	"context"

	"claimgate-service/internal/app/models"
	"claimgate-service/internal/pkg/dto/requests"
	"claimgate-service/internal/pkg/dto/responses"
)

type RemittanceUsecase interface {
	DecodeRemittance(ctx context.Context, request *requests.DecodeRemittance) (*responses.DecodeRemittance, error)
	SummarizeRemittance(ctx context.Context, request *requests.SummarizeRemittance) (*responses.SummarizeRemittance, error)
	GetReportByTrace(ctx context.Context, traceNumber string) (*responses.RemittanceReport, error)
	// AcceptRemittance queues a payload for the intake worker instead of
	// processing it inline.
	AcceptRemittance(ctx context.Context, request *requests.AcceptRemittance) (*responses.AcceptRemittance, error)
	// IngestRemittance decodes, persists and caches one payload arriving from
	// the intake queue.
	IngestRemittance(ctx context.Context, payload []byte, source string) error
}

type RemittanceRepository interface {
	CreateRemittance(ctx context.Context, remittance *models.Remittance) (string, error)
	FindByTraceNumber(ctx context.Context, traceNumber string) (*models.Remittance, error)
}

// RemittanceSource exposes the payer drop location where remittance files
// arrive. The intake worker polls it alongside the queue.
type RemittanceSource interface {
	ListInbound(ctx context.Context) ([]string, error)
	Download(ctx context.Context, fileName string) ([]byte, error)
	Remove(ctx context.Context, fileName string) error
}
