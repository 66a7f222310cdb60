package remittances

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"claimgate-service/internal/app/config"
	"claimgate-service/internal/app/contracts"
	"claimgate-service/internal/app/models"
	"claimgate-service/internal/app/services/shared/remitqueue"
	"claimgate-service/internal/pkg/constvars"
	"claimgate-service/internal/pkg/dto/requests"
	"claimgate-service/internal/pkg/dto/responses"
	"claimgate-service/internal/pkg/edi835"
	"claimgate-service/internal/pkg/exceptions"
	"claimgate-service/internal/pkg/remitsummary"
	"claimgate-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// unquoteJSON unwraps a JSON-encoded string as stored by the redis repository.
func unquoteJSON(raw string, out *string) error {
	return json.Unmarshal([]byte(raw), out)
}

// remitIntake is the enqueue side of remitqueue.Service.
type remitIntake interface {
	Enqueue(ctx context.Context, message remitqueue.RemitQueueMessage) error
}

type remittanceUsecase struct {
	Log                  *zap.Logger
	RemittanceRepository contracts.RemittanceRepository
	RedisRepository      contracts.RedisRepository
	IntakeQueue          remitIntake
	InternalConfig       *config.InternalConfig
}

var (
	remittanceUsecaseInstance *remittanceUsecase
	onceRemittanceUsecase     sync.Once
)

func NewRemittanceUsecase(
	logger *zap.Logger,
	remittanceRepository contracts.RemittanceRepository,
	redisRepository contracts.RedisRepository,
	intakeQueue remitIntake,
	internalConfig *config.InternalConfig,
) contracts.RemittanceUsecase {
	onceRemittanceUsecase.Do(func() {
		remittanceUsecaseInstance = &remittanceUsecase{
			Log:                  logger,
			RemittanceRepository: remittanceRepository,
			RedisRepository:      redisRepository,
			IntakeQueue:          intakeQueue,
			InternalConfig:       internalConfig,
		}
	})
	return remittanceUsecaseInstance
}

func (uc *remittanceUsecase) DecodeRemittance(ctx context.Context, request *requests.DecodeRemittance) (*responses.DecodeRemittance, error) {
	result := edi835.Decode([]byte(request.Payload))
	return &responses.DecodeRemittance{
		Success:     result.Success,
		Errors:      result.Errors,
		Transaction: result.Transaction,
	}, nil
}

func (uc *remittanceUsecase) SummarizeRemittance(ctx context.Context, request *requests.SummarizeRemittance) (*responses.SummarizeRemittance, error) {
	result := edi835.Decode([]byte(request.Payload))
	if !result.Success {
		return nil, exceptions.ErrRemittanceDecode(errors.New(strings.Join(result.Errors, "; ")))
	}

	summary := remitsummary.Build(result.Transaction)
	if err := uc.persistAndCache(ctx, request.Payload, request.Source, result.Transaction, summary); err != nil {
		return nil, err
	}
	return &responses.SummarizeRemittance{Summary: summary}, nil
}

func (uc *remittanceUsecase) GetReportByTrace(ctx context.Context, traceNumber string) (*responses.RemittanceReport, error) {
	cacheKey := constvars.RedisKeyRemitReportPrefix + traceNumber
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("remittanceUsecase.GetReportByTrace cache read failed",
			zap.String(constvars.LoggingTraceNumberKey, traceNumber),
			zap.Error(err),
		)
	}
	if cached != "" {
		var report string
		if err := unquoteJSON(cached, &report); err == nil {
			return &responses.RemittanceReport{TraceNumber: traceNumber, Report: report, Cached: true}, nil
		}
	}

	remittance, err := uc.RemittanceRepository.FindByTraceNumber(ctx, traceNumber)
	if err != nil {
		return nil, err
	}
	if remittance == nil {
		return nil, exceptions.ErrRemittanceNotExist(nil)
	}

	result := edi835.Decode([]byte(remittance.RawPayload))
	if !result.Success {
		return nil, exceptions.ErrRemittanceDecode(errors.New(strings.Join(result.Errors, "; ")))
	}

	report := remitsummary.Render(remitsummary.Build(result.Transaction))
	uc.cacheReport(ctx, traceNumber, report)
	return &responses.RemittanceReport{TraceNumber: traceNumber, Report: report}, nil
}

func (uc *remittanceUsecase) AcceptRemittance(ctx context.Context, request *requests.AcceptRemittance) (*responses.AcceptRemittance, error) {
	// A cheap structural sniff keeps obvious garbage off the queue; full
	// decoding happens in the worker.
	if !strings.HasPrefix(strings.TrimSpace(request.Payload), "ISA") {
		return nil, exceptions.ErrRemittanceDecode(errors.New("content does not begin with an interchange header"))
	}

	message := remitqueue.RemitQueueMessage{
		ID:      utils.GenerateMessageID(),
		Source:  request.Source,
		Payload: []byte(request.Payload),
	}
	if err := uc.IntakeQueue.Enqueue(ctx, message); err != nil {
		return nil, err
	}

	uc.Log.Info("remittanceUsecase.AcceptRemittance queued payload",
		zap.String("message_id", message.ID),
		zap.Int("payload_bytes", len(message.Payload)),
	)
	return &responses.AcceptRemittance{MessageID: message.ID, Status: "queued"}, nil
}

func (uc *remittanceUsecase) IngestRemittance(ctx context.Context, payload []byte, source string) error {
	result := edi835.Decode(payload)
	if !result.Success {
		return exceptions.ErrRemittanceDecode(errors.New(strings.Join(result.Errors, "; ")))
	}

	summary := remitsummary.Build(result.Transaction)
	return uc.persistAndCache(ctx, string(payload), source, result.Transaction, summary)
}

func (uc *remittanceUsecase) persistAndCache(
	ctx context.Context,
	rawPayload, source string,
	tx *edi835.Transaction,
	summary *remitsummary.PaymentSummary,
) error {
	existing, err := uc.RemittanceRepository.FindByTraceNumber(ctx, tx.TraceNumber)
	if err != nil {
		return err
	}
	if existing == nil {
		remittance := &models.Remittance{
			ID:             utils.GenerateSubmissionID(),
			TraceNumber:    tx.TraceNumber,
			PayerName:      tx.Payer.Name,
			PayeeNPI:       tx.Payee.NPI,
			PaymentDate:    tx.PaymentDate,
			TotalPaid:      tx.TotalPaid.StringFixed(2),
			Source:         source,
			RawPayload:     rawPayload,
			ClaimsPaid:     summary.ClaimsPaid,
			ClaimsDenied:   summary.ClaimsDenied,
			ClaimsReversed: summary.ClaimsReversed,
		}
		remittance.SetCreatedAtUpdatedAt()
		if _, err := uc.RemittanceRepository.CreateRemittance(ctx, remittance); err != nil {
			return err
		}
	}

	uc.cacheReport(ctx, tx.TraceNumber, remitsummary.Render(summary))
	return nil
}

func (uc *remittanceUsecase) cacheReport(ctx context.Context, traceNumber, report string) {
	ttl := time.Duration(uc.InternalConfig.Remittance.ReportCacheTTLInMinutes) * time.Minute
	cacheKey := constvars.RedisKeyRemitReportPrefix + traceNumber
	if err := uc.RedisRepository.Set(ctx, cacheKey, report, ttl); err != nil {
		uc.Log.Warn("remittanceUsecase cache write failed",
			zap.String(constvars.LoggingTraceNumberKey, traceNumber),
			zap.Error(err),
		)
	}
}
