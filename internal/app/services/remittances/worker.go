package remittances

import (
	"context"
	"time"

	"claimgate-service/internal/app/config"
	"claimgate-service/internal/app/contracts"
	"claimgate-service/internal/app/services/shared/remitqueue"
	"claimgate-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// intakeQueue is the slice of remitqueue.Service the worker drives.
type intakeQueue interface {
	FetchN(ctx context.Context, max int) ([]remitqueue.QueuedItem, error)
	Ack(deliveryTag uint64) error
	Reenqueue(ctx context.Context, message remitqueue.RemitQueueMessage) error
	EnqueueToDeadQueue(ctx context.Context, message remitqueue.RemitQueueMessage) error
}

// Worker drains the remittance intake queue with at-least-once semantics and
// polls the payer drop bucket for remittance files that bypass the queue.
// Payloads that keep failing to decode are parked on the dead-letter queue.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	queue   intakeQueue
	source  contracts.RemittanceSource
	usecase contracts.RemittanceUsecase
	redis   contracts.RedisRepository
	stop    chan struct{}
}

const workerRetryThreshold = 3

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	queue intakeQueue,
	source contracts.RemittanceSource,
	usecase contracts.RemittanceUsecase,
	redisRepository contracts.RedisRepository,
) *Worker {
	return &Worker{
		log:     log,
		cfg:     cfg,
		queue:   queue,
		source:  source,
		usecase: usecase,
		redis:   redisRepository,
		stop:    make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	interval := time.Duration(w.cfg.Remittance.WorkerIntervalInSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	w.log.Info("remittance intake worker started",
		zap.Duration("interval", interval))

	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case <-ticker.C:
				w.runOnce(ctx)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	// Best-effort distributed lock so only one instance drains per tick.
	interval := time.Duration(w.cfg.Remittance.WorkerIntervalInSeconds) * time.Second
	if interval <= time.Second {
		interval = 2 * time.Second
	}
	acquired, err := w.redis.TrySetNX(ctx, constvars.RedisKeyRemitWorkerLock, "1", interval-time.Second)
	if err != nil {
		w.log.Warn("worker lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer func() {
		if err := w.redis.Delete(ctx, constvars.RedisKeyRemitWorkerLock); err != nil {
			w.log.Error("worker unlock failed", zap.Error(err))
		}
	}()

	items, err := w.queue.FetchN(ctx, w.cfg.Remittance.MaxQueuePerTick)
	if err != nil {
		w.log.Error("intake queue fetch failed", zap.Error(err))
		return
	}

	for _, item := range items {
		w.processItem(ctx, item)
	}

	w.pollInbound(ctx)
}

// pollInbound drains remittance files dropped directly into the payer
// bucket. Files that fail to ingest stay in place and are retried next tick.
func (w *Worker) pollInbound(ctx context.Context) {
	names, err := w.source.ListInbound(ctx)
	if err != nil {
		w.log.Error("inbound bucket list failed", zap.Error(err))
		return
	}

	for _, name := range names {
		payload, err := w.source.Download(ctx, name)
		if err != nil {
			w.log.Error("inbound file download failed",
				zap.String(constvars.LoggingFileNameKey, name),
				zap.Error(err))
			continue
		}
		if len(payload) == 0 {
			// Possibly still being written by the payer; leave it alone.
			w.log.Warn("inbound file is empty, skipping",
				zap.String(constvars.LoggingFileNameKey, name))
			continue
		}

		if err := w.usecase.IngestRemittance(ctx, payload, name); err != nil {
			w.log.Warn("inbound file ingest failed",
				zap.String(constvars.LoggingFileNameKey, name),
				zap.Error(err))
			continue
		}

		if err := w.source.Remove(ctx, name); err != nil {
			w.log.Error("inbound file cleanup failed",
				zap.String(constvars.LoggingFileNameKey, name),
				zap.Error(err))
		}
	}
}

func (w *Worker) processItem(ctx context.Context, item remitqueue.QueuedItem) {
	err := w.usecase.IngestRemittance(ctx, item.Message.Payload, item.Message.Source)
	if err == nil {
		if ackErr := w.queue.Ack(item.DeliveryTag); ackErr != nil {
			w.log.Error("intake ack failed", zap.Error(ackErr))
		}
		return
	}

	w.log.Warn("remittance ingest failed",
		zap.String("message_id", item.Message.ID),
		zap.Int("failed_count", item.Message.FailedCount),
		zap.Error(err))

	message := item.Message
	message.FailedCount++

	if message.FailedCount >= workerRetryThreshold {
		if dlqErr := w.queue.EnqueueToDeadQueue(ctx, message); dlqErr != nil {
			w.log.Error("intake DLQ publish failed", zap.Error(dlqErr))
			return
		}
	} else {
		if reErr := w.queue.Reenqueue(ctx, message); reErr != nil {
			w.log.Error("intake reenqueue failed", zap.Error(reErr))
			return
		}
	}

	if ackErr := w.queue.Ack(item.DeliveryTag); ackErr != nil {
		w.log.Error("intake ack failed", zap.Error(ackErr))
	}
}
