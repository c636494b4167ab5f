package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/akarpov87/job-tracker-api/internal/logger"
	"github.com/akarpov87/job-tracker-api/internal/models"
)

// MessageWriter is the minimal Kafka writer surface the publisher
// needs. Satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher emits application lifecycle events to Kafka, keyed by the
// owning user so a user's events stay ordered within a partition.
type Publisher struct {
	writer MessageWriter
}

// NewPublisher creates a Publisher over an existing writer.
func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// NewKafkaWriter builds a kafka.Writer for the given brokers and topic.
func NewKafkaWriter(addrs []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// Publish sends a single event.
func (p *Publisher) Publish(ctx context.Context, event models.ApplicationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	logger.Log.Debugw("event published", "type", event.Type, "application_id", event.ApplicationID)
	return nil
}

// NopPublisher discards events. Used when no broker is configured.
type NopPublisher struct{}

// NewNopPublisher creates a publisher that drops every event.
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

// Publish discards the event.
func (p *NopPublisher) Publish(ctx context.Context, event models.ApplicationEvent) error {
	return nil
}
