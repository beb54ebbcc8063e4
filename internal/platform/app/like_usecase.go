package app

import (
	"context"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	errprocess "video_platform_service/pkg/err"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeUseCase 按讚
type LikeUseCase interface {
	ToggleVideoLike(ctx context.Context, videoID, actor string) (*domain.ToggleLikeRes, error)
	ToggleCommentLike(ctx context.Context, commentID, actor string) (*domain.ToggleLikeRes, error)
	ToggleTweetLike(ctx context.Context, tweetID, actor string) (*domain.ToggleLikeRes, error)
	LikedVideos(ctx context.Context, actor string) ([]domain.LikedVideo, error)
}

type likeUseCase struct {
	likes    repository.RelationStore[domain.Like]
	videos   repository.Store[domain.Video]
	comments repository.Store[domain.Comment]
	tweets   repository.Store[domain.Tweet]
	events   repository.EventPublisher
}

// NewLikeUseCase create LikeUseCase
func NewLikeUseCase(likes repository.RelationStore[domain.Like],
	videos repository.Store[domain.Video],
	comments repository.Store[domain.Comment],
	tweets repository.Store[domain.Tweet],
	events repository.EventPublisher,
) LikeUseCase {
	return &likeUseCase{
		likes:    likes,
		videos:   videos,
		comments: comments,
		tweets:   tweets,
		events:   events,
	}
}

func (s *likeUseCase) ToggleVideoLike(ctx context.Context, videoID, actor string) (*domain.ToggleLikeRes, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if _, err := s.videos.FindByID(ctx, id); err != nil {
		return nil, storageErr(err, "Video not found", "failed to fetch video")
	}
	return s.toggle(ctx, actor, domain.VideoTarget(id))
}

func (s *likeUseCase) ToggleCommentLike(ctx context.Context, commentID, actor string) (*domain.ToggleLikeRes, error) {
	id, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	if _, err := s.comments.FindByID(ctx, id); err != nil {
		return nil, storageErr(err, "Comment not found", "failed to fetch comment")
	}
	return s.toggle(ctx, actor, domain.CommentTarget(id))
}

func (s *likeUseCase) ToggleTweetLike(ctx context.Context, tweetID, actor string) (*domain.ToggleLikeRes, error) {
	id, err := parseObjectID(tweetID, "tweet id")
	if err != nil {
		return nil, err
	}
	if _, err := s.tweets.FindByID(ctx, id); err != nil {
		return nil, storageErr(err, "Tweet not found", "failed to fetch tweet")
	}
	return s.toggle(ctx, actor, domain.TweetTarget(id))
}

func (s *likeUseCase) toggle(ctx context.Context, actor string, target domain.LikeTarget) (*domain.ToggleLikeRes, error) {
	filter := bson.M{
		"liked_by":    actor,
		"target.kind": target.Kind,
		"target.id":   target.ID,
	}
	like, created, err := s.likes.Toggle(ctx, filter, domain.NewLike(actor, target))
	if err != nil {
		return nil, errprocess.Internal("Something went wrong while toggling the like", err)
	}

	event := domain.EventLikeRemoved
	if created {
		event = domain.EventLikeAdded
	}
	emit(ctx, s.events, domain.NewActivityEvent(event, actor, string(target.Kind)+":"+target.ID.Hex()))

	return &domain.ToggleLikeRes{Liked: created, Like: like}, nil
}

// LikedVideos 依按讚時間新到舊, 已刪除的影片不列出
func (s *likeUseCase) LikedVideos(ctx context.Context, actor string) ([]domain.LikedVideo, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"liked_by": actor, "target.kind": domain.LikeVideo}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         domain.VideoCollection,
			"localField":   "target.id",
			"foreignField": "_id",
			"as":           "video",
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
	}

	liked := []domain.LikedVideo{}
	if err := s.likes.Aggregate(ctx, pipeline, &liked); err != nil {
		return nil, errprocess.Internal("failed to fetch liked videos", err)
	}
	return liked, nil
}
