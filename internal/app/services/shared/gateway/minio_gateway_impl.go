package gateway

import (
	"bytes"
	"context"
	"io"
	"time"

	"claimgate-service/internal/app/config"
	"claimgate-service/internal/app/contracts"
	"claimgate-service/internal/pkg/constvars"
	"claimgate-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// minioGateway exchanges files with the payer: encoded claims go out to the
// drop bucket, remittance files come back from the inbound bucket.
// Transmission is rate limited and retried with a linear backoff because
// payer drop endpoints throttle aggressively during business hours.
type minioGateway struct {
	client        *minio.Client
	log           *zap.Logger
	bucket        string
	inboundBucket string
	retries       int
	timeout       time.Duration
	limiter       *rate.Limiter
}

func NewMinioGateway(client *minio.Client, log *zap.Logger, internalConfig *config.InternalConfig) contracts.PayerGateway {
	cfg := internalConfig.Gateway
	retries := cfg.MaxTransmitRetries
	if retries <= 0 {
		retries = 1
	}
	perSecond := cfg.TransmitRatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	timeout := time.Duration(cfg.TransmitTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &minioGateway{
		client:        client,
		log:           log,
		bucket:        cfg.Bucket,
		inboundBucket: cfg.InboundBucket,
		retries:       retries,
		timeout:       timeout,
		limiter:       rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

func (g *minioGateway) Transmit(ctx context.Context, fileName string, payload []byte) error {
	// A zero-length drop would look like a successful submission to the
	// payer's poller while carrying no claim.
	if len(payload) == 0 {
		return exceptions.ErrGatewayEmptyObject(fileName)
	}

	var lastErr error
	for attempt := 1; attempt <= g.retries; attempt++ {
		if err := g.limiter.Wait(ctx); err != nil {
			return exceptions.ErrGatewayUnavailable(err)
		}

		err := g.putObject(ctx, fileName, payload)
		if err == nil {
			g.log.Info("claim file transmitted",
				zap.String(constvars.LoggingFileNameKey, fileName),
				zap.Int("attempt", attempt))
			return nil
		}
		lastErr = err

		g.log.Warn("claim file transmission failed",
			zap.String(constvars.LoggingFileNameKey, fileName),
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return exceptions.ErrGatewayUnavailable(ctx.Err())
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	return exceptions.ErrGatewayUnavailable(lastErr)
}

func (g *minioGateway) putObject(ctx context.Context, fileName string, payload []byte) error {
	putCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	info, err := g.client.PutObject(
		putCtx,
		g.bucket,
		fileName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationEDIX12},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, g.bucket)
	}
	if info.Size != int64(len(payload)) {
		// Short write; retry as if the put had failed outright.
		return exceptions.ErrGatewayEmptyObject(fileName)
	}
	return nil
}

// ListInbound names the remittance files currently sitting in the payer's
// drop bucket.
func (g *minioGateway) ListInbound(ctx context.Context) ([]string, error) {
	listCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var names []string
	for object := range g.client.ListObjects(listCtx, g.inboundBucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err, g.inboundBucket)
		}
		names = append(names, object.Key)
	}
	return names, nil
}

func (g *minioGateway) Download(ctx context.Context, fileName string) ([]byte, error) {
	getCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	object, err := g.client.GetObject(getCtx, g.inboundBucket, fileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, g.inboundBucket)
	}
	defer object.Close()

	payload, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, g.inboundBucket)
	}
	return payload, nil
}

func (g *minioGateway) Remove(ctx context.Context, fileName string) error {
	if err := g.client.RemoveObject(ctx, g.inboundBucket, fileName, minio.RemoveObjectOptions{}); err != nil {
		return exceptions.ErrMinioRemoveObject(err, g.inboundBucket)
	}
	return nil
}
