package repository

import (
	"encoding/json"
	"fmt"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/pkg/database"

	"github.com/streadway/amqp"
)

// CleanupQueue 刪除失敗的遠端物件排入佇列
type CleanupQueue interface {
	Enqueue(job domain.CleanupJob) error
}

type cleanupQueue struct {
	rabbit database.RabbitRepo
}

// NewCleanupQueue create CleanupQueue, declares the durable queue
func NewCleanupQueue(rabbit database.RabbitRepo) (CleanupQueue, error) {
	if err := rabbit.QueueDeclare(domain.CleanupQueueName); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", domain.CleanupQueueName, err)
	}
	return &cleanupQueue{rabbit: rabbit}, nil
}

func (q *cleanupQueue) Enqueue(job domain.CleanupJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.rabbit.Publish("", domain.CleanupQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
