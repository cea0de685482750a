// Package kafka publishes order events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// StatusChangedEventType names the event on the wire.
const StatusChangedEventType = "order.status_changed"

// OrderStatusChangedEvent is the JSON payload of a status change message.
type OrderStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	DriverID   *string   `json:"driver_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ActorRole  string    `json:"actor_role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventProducer writes order events keyed by order ID, so every event of one
// order lands on the same partition in commit order.
type OrderEventProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
		},
	}
}

// PublishStatusChanged implements ports.OrderEventPublisher.
func (p *OrderEventProducer) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	msg, err := statusChangedMessage(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *OrderEventProducer) Topic() string {
	return p.topic
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}

func statusChangedMessage(event order.StatusChanged) (kafka.Message, error) {
	payload := OrderStatusChangedEvent{
		EventType:  StatusChangedEventType,
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		From:       event.From.String(),
		To:         event.To.String(),
		ActorRole:  event.ActorRole.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}
	if event.DriverID != nil {
		driverID := event.DriverID.String()
		payload.DriverID = &driverID
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(payload.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(StatusChangedEventType)},
		},
		Time: payload.OccurredAt,
	}, nil
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, order.StatusChanged) error {
	return nil
}
