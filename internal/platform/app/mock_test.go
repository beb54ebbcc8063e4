package app

import (
	"context"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	"video_platform_service/pkg/logger"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	logger.SetNewNop()
}

// MockStore mock repository.Store
type MockStore[T any] struct {
	mock.Mock
}

func (m *MockStore[T]) Create(ctx context.Context, doc *T) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockStore[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore[T]) FindOne(ctx context.Context, filter interface{}) (*T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) != nil {
		return args.Get(0).(*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore[T]) Find(ctx context.Context, filter interface{}, opt repository.FindOptions) ([]T, error) {
	args := m.Called(ctx, filter, opt)
	if args.Get(0) != nil {
		return args.Get(0).([]T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore[T]) DistinctIDs(ctx context.Context, filter interface{}) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) != nil {
		return args.Get(0).([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update interface{}) (*T, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) != nil {
		return args.Get(0).(*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore[T]) UpdateOne(ctx context.Context, filter, update interface{}) (*T, error) {
	args := m.Called(ctx, filter, update)
	if args.Get(0) != nil {
		return args.Get(0).(*T), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*T), args.Error(1)
	}
	return nil, args.Error(1)
}

// Aggregate 以 .Run 填入 out
func (m *MockStore[T]) Aggregate(ctx context.Context, pipeline interface{}, out interface{}) error {
	args := m.Called(ctx, pipeline, out)
	return args.Error(0)
}

func (m *MockStore[T]) AggregatePaginate(ctx context.Context, pipeline mongo.Pipeline, page, limit int) (*domain.Page[T], error) {
	args := m.Called(ctx, pipeline, page, limit)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Page[T]), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRelationStore mock repository.RelationStore
type MockRelationStore[T any] struct {
	MockStore[T]
}

func (m *MockRelationStore[T]) Toggle(ctx context.Context, filter interface{}, doc *T) (*T, bool, error) {
	args := m.Called(ctx, filter, doc)
	if args.Get(0) != nil {
		return args.Get(0).(*T), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

// MockMedia mock repository.MediaGateway
type MockMedia struct {
	mock.Mock
}

func (m *MockMedia) Upload(ctx context.Context, localPath string) (*domain.RemoteMedia, error) {
	args := m.Called(ctx, localPath)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.RemoteMedia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMedia) Delete(ctx context.Context, remoteURL string, kind domain.MediaKind) error {
	args := m.Called(ctx, remoteURL, kind)
	return args.Error(0)
}

// MockCleanupQueue mock repository.CleanupQueue
type MockCleanupQueue struct {
	mock.Mock
}

func (m *MockCleanupQueue) Enqueue(job domain.CleanupJob) error {
	args := m.Called(job)
	return args.Error(0)
}

// MockEvents mock repository.EventPublisher
type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) Publish(ctx context.Context, e domain.ActivityEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// MockUsers mock repository.UserDirectory
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) Exists(ctx context.Context, memberID string) (bool, error) {
	args := m.Called(ctx, memberID)
	return args.Bool(0), args.Error(1)
}

// MockStatsCache mock repository.StatsCache
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, owner string) (*domain.ChannelStats, bool, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChannelStats), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MockStatsCache) Set(ctx context.Context, owner string, stats *domain.ChannelStats) error {
	args := m.Called(ctx, owner, stats)
	return args.Error(0)
}
