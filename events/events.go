// Package events publishes order lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/raushankrgupta/skincare-storefront/models"
	"github.com/segmentio/kafka-go"
)

type Type string

const (
	OrderCreated        Type = "order-created"
	OrderStatusUpdated  Type = "order-status-updated"
	OrderPaymentProof   Type = "order-payment-proof-added"
	OrderTrackingNumber Type = "order-tracking-added"
)

type OrderEvent struct {
	Type       Type         `json:"type"`
	Order      models.Order `json:"order"`
	OccurredAt time.Time    `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, OrderEvent) error { return nil }

// KafkaPublisher writes events keyed by orderId so one order stays on one partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaWriter creates a writer that only waits for the leader acknowledgement.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: NewKafkaWriter(brokers, topic)}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev OrderEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Order.OrderID),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(ev.Type)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []OrderEvent
}

func (r *Recorder) Publish(_ context.Context, ev OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
	return nil
}
