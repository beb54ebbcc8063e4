package repository

import (
	"context"
	"encoding/json"

	"video_platform_service/internal/platform/domain"

	"github.com/segmentio/kafka-go"
)

// EventPublisher activity events
type EventPublisher interface {
	Publish(ctx context.Context, e domain.ActivityEvent) error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaPublisher struct {
	writer messageWriter
}

// NewEventPublisher kafka publisher, nil writer gives a no-op publisher
func NewEventPublisher(writer *kafka.Writer) EventPublisher {
	if writer == nil {
		return nopPublisher{}
	}
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, e domain.ActivityEvent) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.Actor),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	})
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.ActivityEvent) error { return nil }
