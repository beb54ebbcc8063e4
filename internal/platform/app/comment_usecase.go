package app

import (
	"context"
	"strings"
	"time"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	errprocess "video_platform_service/pkg/err"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentUseCase 留言
type CommentUseCase interface {
	ListComments(ctx context.Context, videoID string, page, limit int) (*domain.Page[domain.Comment], error)
	AddComment(ctx context.Context, videoID, actor, content string) (*domain.Comment, error)
	UpdateComment(ctx context.Context, commentID, actor, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID, actor string) (*domain.Comment, error)
}

type commentUseCase struct {
	comments repository.Store[domain.Comment]
	videos   repository.Store[domain.Video]
}

// NewCommentUseCase create CommentUseCase
func NewCommentUseCase(comments repository.Store[domain.Comment], videos repository.Store[domain.Video]) CommentUseCase {
	return &commentUseCase{comments: comments, videos: videos}
}

func (s *commentUseCase) ListComments(ctx context.Context, videoID string, page, limit int) (*domain.Page[domain.Comment], error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if _, err := s.videos.FindByID(ctx, id); err != nil {
		return nil, storageErr(err, "Video not found", "failed to fetch video")
	}

	page, limit = domain.NormalizePage(page, limit)
	filter := bson.M{"video": id}

	items, err := s.comments.Find(ctx, filter, repository.FindOptions{
		Skip:  domain.Skip(page, limit),
		Limit: int64(limit),
		Sort:  bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	})
	if err != nil {
		return nil, errprocess.Internal("failed to fetch comments", err)
	}

	total, err := s.comments.Count(ctx, filter)
	if err != nil {
		return nil, errprocess.Internal("failed to count comments", err)
	}

	return domain.NewPage(items, total, page, limit), nil
}

func (s *commentUseCase) AddComment(ctx context.Context, videoID, actor, content string) (*domain.Comment, error) {
	if blank(content) {
		return nil, errprocess.BadRequest("Comment content is required")
	}
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if _, err := s.videos.FindByID(ctx, id); err != nil {
		return nil, storageErr(err, "Video not found", "failed to fetch video")
	}

	c := domain.NewComment(id, actor, strings.TrimSpace(content))
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, errprocess.Internal("Something went wrong while adding the comment", err)
	}
	return c, nil
}

func (s *commentUseCase) UpdateComment(ctx context.Context, commentID, actor, content string) (*domain.Comment, error) {
	if blank(content) {
		return nil, errprocess.BadRequest("Comment content is required")
	}
	id, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, id, actor); err != nil {
		return nil, err
	}

	c, err := s.comments.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"content":    strings.TrimSpace(content),
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return nil, storageErr(err, "Comment not found", "Something went wrong while updating the comment")
	}
	return c, nil
}

func (s *commentUseCase) DeleteComment(ctx context.Context, commentID, actor string) (*domain.Comment, error) {
	id, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, id, actor); err != nil {
		return nil, err
	}

	c, err := s.comments.DeleteByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Comment not found", "Something went wrong while deleting the comment")
	}
	return c, nil
}

func (s *commentUseCase) owned(ctx context.Context, id primitive.ObjectID, actor string) (*domain.Comment, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Comment not found", "failed to fetch comment")
	}
	if c.Owner != actor {
		return nil, errprocess.Forbidden("You are not the owner of this comment")
	}
	return c, nil
}
