package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName   = "reminders-exchange"
	MainQueueName  = "reminders-run"
	RetryQueueName = "reminders-run-retry"
	DLQName        = "reminders-run-dlq"
	RoutingKey     = "run"
	RetryKey       = "retry"

	// RetryDelay is how long a failed trigger waits in the retry queue before it is re-driven.
	RetryDelay = 30 * time.Second
)

// TriggerMessage asks a worker to run the recurrence engine once.
type TriggerMessage struct {
	ID          uuid.UUID `json:"id"`
	RequestedAt time.Time `json:"requested_at"`
	Source      string    `json:"source"`  // scheduler or api
	Attempt     int       `json:"attempt"` // times the trigger was re-driven after a failed run
}

// NewTriggerMessage creates a trigger with a fresh id.
func NewTriggerMessage(source string, at time.Time) TriggerMessage {
	return TriggerMessage{ID: uuid.New(), RequestedAt: at, Source: source}
}

type TriggerQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewTriggerQueue declares the exchange, the run queue and its retry and dead-letter queues.
func NewTriggerQueue(ch *rabbitmq.Channel) (*TriggerQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(RetryDelay / time.Millisecond),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	if err := ch.QueueBind(RetryQueueName, RetryKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &TriggerQueue{Publisher: pub, Consumer: cons}, nil
}

func (q *TriggerQueue) Publish(msg TriggerMessage, strategy retry.Strategy) error {
	return q.publish(msg, RoutingKey, strategy)
}

// PublishRetry parks a trigger in the retry queue. It dead-letters back to the
// run queue once RetryDelay has passed.
func (q *TriggerQueue) PublishRetry(msg TriggerMessage, strategy retry.Strategy) error {
	return q.publish(msg, RetryKey, strategy)
}

func (q *TriggerQueue) publish(msg TriggerMessage, key string, strategy retry.Strategy) error {
	body, err := EncodeTrigger(msg)
	if err != nil {
		return err
	}

	return q.Publisher.PublishWithRetry(body, key, "application/json", strategy)
}

// Consume forwards decoded triggers to out until ctx is done or the consumer stops.
func (q *TriggerQueue) Consume(ctx context.Context, out chan<- TriggerMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func forward(ctx context.Context, in <-chan []byte, out chan<- TriggerMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case body, ok := <-in:
			if !ok {
				return
			}

			msg, err := DecodeTrigger(body)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

func EncodeTrigger(msg TriggerMessage) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return body, nil
}

func DecodeTrigger(body []byte) (TriggerMessage, error) {
	var msg TriggerMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return TriggerMessage{}, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return msg, nil
}
