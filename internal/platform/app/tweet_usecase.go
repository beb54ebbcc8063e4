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

// TweetUseCase 短貼文
type TweetUseCase interface {
	CreateTweet(ctx context.Context, actor, content string) (*domain.Tweet, error)
	GetUserTweets(ctx context.Context, userID string) ([]domain.Tweet, error)
	UpdateTweet(ctx context.Context, tweetID, actor, content string) (*domain.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID, actor string) (*domain.Tweet, error)
}

type tweetUseCase struct {
	tweets repository.Store[domain.Tweet]
	users  repository.UserDirectory
}

// NewTweetUseCase create TweetUseCase
func NewTweetUseCase(tweets repository.Store[domain.Tweet], users repository.UserDirectory) TweetUseCase {
	return &tweetUseCase{tweets: tweets, users: users}
}

func (s *tweetUseCase) CreateTweet(ctx context.Context, actor, content string) (*domain.Tweet, error) {
	if blank(content) {
		return nil, errprocess.BadRequest("Tweet content is required")
	}

	t := domain.NewTweet(actor, strings.TrimSpace(content))
	if err := s.tweets.Create(ctx, t); err != nil {
		return nil, errprocess.Internal("Something went wrong while creating the tweet", err)
	}
	return t, nil
}

// GetUserTweets newest first, 沒有貼文回傳空陣列
func (s *tweetUseCase) GetUserTweets(ctx context.Context, userID string) ([]domain.Tweet, error) {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	tweets, err := s.tweets.Find(ctx, bson.M{"owner": userID}, repository.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	})
	if err != nil {
		return nil, errprocess.Internal("failed to fetch tweets", err)
	}
	return tweets, nil
}

func (s *tweetUseCase) UpdateTweet(ctx context.Context, tweetID, actor, content string) (*domain.Tweet, error) {
	if blank(content) {
		return nil, errprocess.BadRequest("Tweet content is required")
	}
	id, err := parseObjectID(tweetID, "tweet id")
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, id, actor); err != nil {
		return nil, err
	}

	t, err := s.tweets.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"content":    strings.TrimSpace(content),
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return nil, storageErr(err, "Tweet not found", "Something went wrong while updating the tweet")
	}
	return t, nil
}

func (s *tweetUseCase) DeleteTweet(ctx context.Context, tweetID, actor string) (*domain.Tweet, error) {
	id, err := parseObjectID(tweetID, "tweet id")
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, id, actor); err != nil {
		return nil, err
	}

	t, err := s.tweets.DeleteByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Tweet not found", "Something went wrong while deleting the tweet")
	}
	return t, nil
}

func (s *tweetUseCase) checkOwner(ctx context.Context, id primitive.ObjectID, actor string) error {
	t, err := s.tweets.FindByID(ctx, id)
	if err != nil {
		return storageErr(err, "Tweet not found", "failed to fetch tweet")
	}
	if t.Owner != actor {
		return errprocess.Forbidden("You are not the owner of this tweet")
	}
	return nil
}
