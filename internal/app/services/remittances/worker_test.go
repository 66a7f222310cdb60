package remittances

import (
	"context"
	"testing"

	"claimgate-service/internal/app/config"
	"claimgate-service/internal/app/services/shared/remitqueue"
	"claimgate-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFetchQueue struct {
	items      []remitqueue.QueuedItem
	acked      []uint64
	reenqueued []remitqueue.RemitQueueMessage
	dead       []remitqueue.RemitQueueMessage
}

func (q *fakeFetchQueue) FetchN(ctx context.Context, max int) ([]remitqueue.QueuedItem, error) {
	items := q.items
	q.items = nil
	return items, nil
}

func (q *fakeFetchQueue) Ack(deliveryTag uint64) error {
	q.acked = append(q.acked, deliveryTag)
	return nil
}

func (q *fakeFetchQueue) Reenqueue(ctx context.Context, message remitqueue.RemitQueueMessage) error {
	q.reenqueued = append(q.reenqueued, message)
	return nil
}

func (q *fakeFetchQueue) EnqueueToDeadQueue(ctx context.Context, message remitqueue.RemitQueueMessage) error {
	q.dead = append(q.dead, message)
	return nil
}

type fakeRemittanceSource struct {
	files   map[string][]byte
	removed []string
}

func (s *fakeRemittanceSource) ListInbound(ctx context.Context) ([]string, error) {
	var names []string
	for name := range s.files {
		names = append(names, name)
	}
	return names, nil
}

func (s *fakeRemittanceSource) Download(ctx context.Context, fileName string) ([]byte, error) {
	return s.files[fileName], nil
}

func (s *fakeRemittanceSource) Remove(ctx context.Context, fileName string) error {
	s.removed = append(s.removed, fileName)
	delete(s.files, fileName)
	return nil
}

func newTestWorker(queue *fakeFetchQueue, source *fakeRemittanceSource, uc *remittanceUsecase) *Worker {
	cfg := &config.InternalConfig{}
	cfg.Remittance.MaxQueuePerTick = 10
	cfg.Remittance.WorkerIntervalInSeconds = 30
	return &Worker{
		log:     zap.NewNop(),
		cfg:     cfg,
		queue:   queue,
		source:  source,
		usecase: uc,
		redis:   newFakeRedisRepository(),
		stop:    make(chan struct{}),
	}
}

func TestWorkerDrainsQueueAndAcks(t *testing.T) {
	repo := newFakeRemittanceRepository()
	uc := newTestRemittanceUsecase(repo, newFakeRedisRepository())
	queue := &fakeFetchQueue{items: []remitqueue.QueuedItem{
		{DeliveryTag: 7, Message: remitqueue.RemitQueueMessage{ID: "m1", Source: "sftp", Payload: []byte(remitPayload("CHK31337"))}},
	}}
	w := newTestWorker(queue, &fakeRemittanceSource{files: map[string][]byte{}}, uc)

	w.runOnce(context.Background())

	assert.Equal(t, []uint64{7}, queue.acked)
	assert.Empty(t, queue.reenqueued)
	require.NotNil(t, repo.byTrace["CHK31337"])
	assert.Equal(t, "sftp", repo.byTrace["CHK31337"].Source)
}

func TestWorkerRetriesThenParksPoisonMessage(t *testing.T) {
	uc := newTestRemittanceUsecase(newFakeRemittanceRepository(), newFakeRedisRepository())
	poison := remitqueue.RemitQueueMessage{ID: "m2", Payload: []byte("garbage")}

	queue := &fakeFetchQueue{items: []remitqueue.QueuedItem{{DeliveryTag: 1, Message: poison}}}
	w := newTestWorker(queue, &fakeRemittanceSource{files: map[string][]byte{}}, uc)

	w.runOnce(context.Background())
	require.Len(t, queue.reenqueued, 1)
	assert.Equal(t, 1, queue.reenqueued[0].FailedCount)
	assert.Equal(t, []uint64{1}, queue.acked)

	// Third failure crosses the retry threshold.
	exhausted := poison
	exhausted.FailedCount = workerRetryThreshold - 1
	queue.items = []remitqueue.QueuedItem{{DeliveryTag: 2, Message: exhausted}}

	w.runOnce(context.Background())
	require.Len(t, queue.dead, 1)
	assert.Equal(t, workerRetryThreshold, queue.dead[0].FailedCount)
}

func TestWorkerPollsInboundBucket(t *testing.T) {
	repo := newFakeRemittanceRepository()
	uc := newTestRemittanceUsecase(repo, newFakeRedisRepository())
	source := &fakeRemittanceSource{files: map[string][]byte{
		"REMIT_20240120.dat": []byte(remitPayload("CHK90001")),
	}}
	w := newTestWorker(&fakeFetchQueue{}, source, uc)

	w.runOnce(context.Background())

	require.NotNil(t, repo.byTrace["CHK90001"])
	assert.Equal(t, "REMIT_20240120.dat", repo.byTrace["CHK90001"].Source)
	assert.Equal(t, []string{"REMIT_20240120.dat"}, source.removed)
}

func TestWorkerLeavesUnreadableInboundFilesInPlace(t *testing.T) {
	uc := newTestRemittanceUsecase(newFakeRemittanceRepository(), newFakeRedisRepository())
	source := &fakeRemittanceSource{files: map[string][]byte{
		"still-uploading.dat": {},
		"corrupt.dat":         []byte("garbage"),
	}}
	w := newTestWorker(&fakeFetchQueue{}, source, uc)

	w.runOnce(context.Background())

	assert.Empty(t, source.removed, "failed files stay for the next tick")
	assert.Len(t, source.files, 2)
}

func TestWorkerSkipsTickWhenLockHeld(t *testing.T) {
	uc := newTestRemittanceUsecase(newFakeRemittanceRepository(), newFakeRedisRepository())
	queue := &fakeFetchQueue{items: []remitqueue.QueuedItem{
		{DeliveryTag: 9, Message: remitqueue.RemitQueueMessage{ID: "m3", Payload: []byte(remitPayload("CHK11111"))}},
	}}
	w := newTestWorker(queue, &fakeRemittanceSource{files: map[string][]byte{}}, uc)

	locked := newFakeRedisRepository()
	locked.store[constvars.RedisKeyRemitWorkerLock] = `"1"`
	w.redis = locked

	w.runOnce(context.Background())

	assert.Empty(t, queue.acked, "another instance holds the lock")
	require.Len(t, queue.items, 1)
}