package app

import (
	"context"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardUseCase 頻道統計
type DashboardUseCase interface {
	ChannelStats(ctx context.Context, owner string) (*domain.ChannelStats, error)
	ChannelVideos(ctx context.Context, owner string) ([]domain.Video, error)
}

type dashboardUseCase struct {
	videos        repository.Store[domain.Video]
	comments      repository.Store[domain.Comment]
	tweets        repository.Store[domain.Tweet]
	likes         repository.RelationStore[domain.Like]
	subscriptions repository.RelationStore[domain.Subscription]
	users         repository.UserDirectory
	cache         repository.StatsCache
}

// NewDashboardUseCase create DashboardUseCase
func NewDashboardUseCase(videos repository.Store[domain.Video],
	comments repository.Store[domain.Comment],
	tweets repository.Store[domain.Tweet],
	likes repository.RelationStore[domain.Like],
	subscriptions repository.RelationStore[domain.Subscription],
	users repository.UserDirectory,
	cache repository.StatsCache,
) DashboardUseCase {
	return &dashboardUseCase{
		videos:        videos,
		comments:      comments,
		tweets:        tweets,
		likes:         likes,
		subscriptions: subscriptions,
		users:         users,
		cache:         cache,
	}
}

// ChannelStats 各項計數平行查詢，結果非同一時間點的一致快照
func (s *dashboardUseCase) ChannelStats(ctx context.Context, owner string) (*domain.ChannelStats, error) {
	if err := requireUser(ctx, s.users, owner); err != nil {
		return nil, err
	}

	if cached, hit, err := s.cache.Get(ctx, owner); err != nil {
		logger.Log.Warn("stats cache get failed", zap.String("owner", owner), zap.Error(err))
	} else if hit {
		return cached, nil
	}

	stats := &domain.ChannelStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalVideos, err = s.videos.Count(gctx, bson.M{"owner": owner})
		return err
	})
	g.Go(func() (err error) {
		stats.TotalViews, err = s.totalViews(gctx, owner)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSubscribers, err = s.subscriptions.Count(gctx, bson.M{"channel": owner})
		return err
	})
	g.Go(func() error {
		ids, err := s.videos.DistinctIDs(gctx, bson.M{"owner": owner})
		if err != nil {
			return err
		}
		if stats.TotalVideoLikes, err = s.countLikes(gctx, domain.LikeVideo, ids); err != nil {
			return err
		}
		stats.TotalComments, err = s.comments.Count(gctx, bson.M{"video": bson.M{"$in": ids}})
		return err
	})
	g.Go(func() error {
		ids, err := s.tweets.DistinctIDs(gctx, bson.M{"owner": owner})
		if err != nil {
			return err
		}
		stats.TotalTweets = int64(len(ids))
		stats.TotalTweetLikes, err = s.countLikes(gctx, domain.LikeTweet, ids)
		return err
	})
	g.Go(func() error {
		ids, err := s.comments.DistinctIDs(gctx, bson.M{"owner": owner})
		if err != nil {
			return err
		}
		stats.TotalCommentLikes, err = s.countLikes(gctx, domain.LikeComment, ids)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errprocess.Internal("failed to fetch channel stats", err)
	}

	if err := s.cache.Set(ctx, owner, stats); err != nil {
		logger.Log.Warn("stats cache set failed", zap.String("owner", owner), zap.Error(err))
	}
	return stats, nil
}

func (s *dashboardUseCase) totalViews(ctx context.Context, owner string) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"owner": owner}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$views"},
		}}},
	}

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := s.videos.Aggregate(ctx, pipeline, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

func (s *dashboardUseCase) countLikes(ctx context.Context, kind domain.LikeKind, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.likes.Count(ctx, bson.M{"target.kind": kind, "target.id": bson.M{"$in": ids}})
}

func (s *dashboardUseCase) ChannelVideos(ctx context.Context, owner string) ([]domain.Video, error) {
	if err := requireUser(ctx, s.users, owner); err != nil {
		return nil, err
	}

	videos, err := s.videos.Find(ctx, bson.M{"owner": owner, "video_file": bson.M{"$ne": ""}}, repository.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, errprocess.Internal("failed to fetch channel videos", err)
	}
	return videos, nil
}
