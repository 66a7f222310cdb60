package remitqueue

import (
	"context"
	"fmt"
	"sync"

	"claimgate-service/internal/pkg/constvars"
	"claimgate-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// RemitQueueMessage is the payload stored in RabbitMQ: one raw remittance
// interchange plus intake metadata.
type RemitQueueMessage struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Payload     []byte `json:"payload"`
	FailedCount int    `json:"failed_count"`
}

// Service manages the durable remittance intake queue and its DLQ.
type Service struct {
	ch          *amqp.Channel
	log         *zap.Logger
	queueName   string
	dlqName     string
	confirms    chan amqp.Confirmation
	mu          sync.Mutex
}

// NewService declares durable queues, enables confirms, and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName, dlqName string, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{queueName, dlqName} {
		_, err = ch.QueueDeclare(
			name,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return nil, err
		}
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	// Publisher confirms so intake files are never silently dropped.
	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		dlqName:   dlqName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// QueuedItem is a fetched delivery and its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Message     RemitQueueMessage
}

// Enqueue publishes a message to the intake queue with persistence and waits
// for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, message RemitQueueMessage) error {
	return s.publish(ctx, s.queueName, message)
}

// Reenqueue puts a failed message back on the tail of the intake queue.
func (s *Service) Reenqueue(ctx context.Context, message RemitQueueMessage) error {
	return s.publish(ctx, s.queueName, message)
}

// EnqueueToDeadQueue parks a message that exhausted its retries.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, message RemitQueueMessage) error {
	return s.publish(ctx, s.dlqName, message)
}

func (s *Service) publish(ctx context.Context, queue string, message RemitQueueMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}

// FetchN retrieves up to max messages using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, max int) ([]QueuedItem, error) {
	if max <= 0 {
		max = 1
	}
	items := make([]QueuedItem, 0, max)

	for i := 0; i < max; i++ {
		d, ok, err := s.ch.Get(s.queueName, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
		}
		if !ok {
			break
		}

		var message RemitQueueMessage
		if err := json.Unmarshal(d.Body, &message); err != nil {
			// Poison payloads go straight to the DLQ and get acked so they
			// never wedge the queue head.
			s.log.Error("undecodable intake message",
				zap.String(constvars.LoggingQueueKey, s.queueName),
				zap.Error(err))
			if dlqErr := s.EnqueueToDeadQueue(ctx, RemitQueueMessage{Payload: d.Body}); dlqErr != nil {
				return nil, dlqErr
			}
			if ackErr := s.ch.Ack(d.DeliveryTag, false); ackErr != nil {
				return nil, exceptions.ErrRabbitMQConsumeMessage(ackErr, s.queueName)
			}
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Message: message})
	}
	return items, nil
}

// Ack removes a delivered message from the queue.
func (s *Service) Ack(deliveryTag uint64) error {
	if err := s.ch.Ack(deliveryTag, false); err != nil {
		return exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
	}
	return nil
}
