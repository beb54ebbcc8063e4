package app

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// CleanupConsumer 消費 media_cleanup queue，刪除遺留的遠端物件
type CleanupConsumer struct {
	rabbit     database.RabbitRepo
	media      repository.MediaGateway
	retryDelay time.Duration
}

// NewCleanupConsumer 建構 CleanupConsumer
func NewCleanupConsumer(rabbit database.RabbitRepo, media repository.MediaGateway, retryDelay time.Duration) *CleanupConsumer {
	return &CleanupConsumer{rabbit: rabbit, media: media, retryDelay: retryDelay}
}

// Start 阻塞直到 ctx 結束或 channel 關閉
func (c *CleanupConsumer) Start(ctx context.Context) error {
	msgs, err := c.rabbit.Consume(domain.CleanupQueueName, "platform-cleanup")
	if err != nil {
		return err
	}
	logger.Log.Info("cleanup consumer started", zap.String("queue", domain.CleanupQueueName))

	for {
		select {
		case d, ok := <-msgs:
			if !ok {
				return errors.New("cleanup delivery channel closed")
			}
			c.handle(ctx, d)
		case <-ctx.Done():
			logger.Log.Info("cleanup consumer stopped")
			return nil
		}
	}
}

func (c *CleanupConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var job domain.CleanupJob
	if err := json.Unmarshal(d.Body, &job); err != nil || job.URL == "" {
		// 格式錯誤，重送也不會成功
		logger.Log.Error("malformed cleanup job", zap.ByteString("body", d.Body), zap.Error(err))
		if err := d.Nack(false, false); err != nil {
			logger.Log.Error("nack failed", zap.Error(err))
		}
		return
	}

	if err := c.media.Delete(ctx, job.URL, job.Kind); err != nil {
		logger.Log.Warn("cleanup delete failed, requeue", zap.String("url", job.URL), zap.Error(err))
		select {
		case <-time.After(c.retryDelay):
		case <-ctx.Done():
		}
		if err := d.Nack(false, true); err != nil {
			logger.Log.Error("nack failed", zap.Error(err))
		}
		return
	}

	if err := d.Ack(false); err != nil {
		logger.Log.Error("ack failed", zap.Error(err))
		return
	}
	logger.Log.Info("orphaned media removed", zap.String("url", job.URL), zap.String("reason", job.Reason))
}
