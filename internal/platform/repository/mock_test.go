package repository

import (
	"context"
	"time"

	"video_platform_service/internal/platform/domain"

	"github.com/jackc/pgx/v4"
	"github.com/segmentio/kafka-go"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/mock"
)

// MockMinIO mock database.MinIOClientRepo
type MockMinIO struct {
	mock.Mock
}

func (m *MockMinIO) UploadFile(ctx context.Context, objectName, filePath, contentType string) (int64, error) {
	args := m.Called(ctx, objectName, filePath, contentType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMinIO) RemoveObject(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockMinIO) Bucket() string {
	return "media"
}

// MockRabbit mock database.RabbitRepo
type MockRabbit struct {
	mock.Mock
}

func (m *MockRabbit) QueueDeclare(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockRabbit) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockRabbit) Consume(queue, consumer string) (<-chan amqp.Delivery, error) {
	args := m.Called(queue, consumer)
	return args.Get(0).(<-chan amqp.Delivery), args.Error(1)
}

// MockRedis mock database.RedisRepository[domain.ChannelStats]
type MockRedis struct {
	mock.Mock
}

func (m *MockRedis) Set(ctx context.Context, key string, value domain.ChannelStats, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockRedis) Get(ctx context.Context, key string) (domain.ChannelStats, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.ChannelStats), args.Error(1)
}

func (m *MockRedis) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockWriter mock kafka writer
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

// MockQuerier mock pgx pool
type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	a := m.Called(ctx, sql, args)
	return a.Get(0).(pgx.Row)
}

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.exists
	return nil
}
