package handlers

import (
	"context"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/middlewares"
	"video_platform_service/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.SetNewNop()
}

// newTestApp fiber app with envelope error handler; actor == "" means unauthenticated
func newTestApp(actor string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		if actor != "" {
			c.Locals(middlewares.TokenMemberID, actor)
		}
		return c.Next()
	})
	return app
}

// MockVideoUseCase mock app.VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) ListVideos(ctx context.Context, req domain.ListVideosReq) (*domain.Page[domain.Video], error) {
	args := m.Called(ctx, req)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Page[domain.Video]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) PublishVideo(ctx context.Context, req domain.PublishVideoReq) (*domain.Video, error) {
	args := m.Called(ctx, req)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) GetVideo(ctx context.Context, videoID, viewer string) (*domain.Video, error) {
	args := m.Called(ctx, videoID, viewer)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) UpdateVideo(ctx context.Context, req domain.UpdateVideoReq) (*domain.Video, error) {
	args := m.Called(ctx, req)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) DeleteVideo(ctx context.Context, videoID, actor string) (*domain.Video, error) {
	args := m.Called(ctx, videoID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoUseCase) TogglePublish(ctx context.Context, videoID, actor string) (*domain.Video, error) {
	args := m.Called(ctx, videoID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCommentUseCase mock app.CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, videoID string, page, limit int) (*domain.Page[domain.Comment], error) {
	args := m.Called(ctx, videoID, page, limit)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Page[domain.Comment]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentUseCase) AddComment(ctx context.Context, videoID, actor, content string) (*domain.Comment, error) {
	args := m.Called(ctx, videoID, actor, content)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(ctx context.Context, commentID, actor, content string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID, actor, content)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, commentID, actor string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTweetUseCase mock app.TweetUseCase
type MockTweetUseCase struct {
	mock.Mock
}

func (m *MockTweetUseCase) CreateTweet(ctx context.Context, actor, content string) (*domain.Tweet, error) {
	args := m.Called(ctx, actor, content)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Tweet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTweetUseCase) GetUserTweets(ctx context.Context, userID string) ([]domain.Tweet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Tweet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTweetUseCase) UpdateTweet(ctx context.Context, tweetID, actor, content string) (*domain.Tweet, error) {
	args := m.Called(ctx, tweetID, actor, content)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Tweet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTweetUseCase) DeleteTweet(ctx context.Context, tweetID, actor string) (*domain.Tweet, error) {
	args := m.Called(ctx, tweetID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Tweet), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPlaylistUseCase mock app.PlaylistUseCase
type MockPlaylistUseCase struct {
	mock.Mock
}

func (m *MockPlaylistUseCase) CreatePlaylist(ctx context.Context, actor, name, description string) (*domain.Playlist, error) {
	args := m.Called(ctx, actor, name, description)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistUseCase) GetUserPlaylists(ctx context.Context, userID string) ([]domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistUseCase) GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistUseCase) UpdatePlaylist(ctx context.Context, playlistID, actor, name, description string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID, actor, name, description)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistUseCase) DeletePlaylist(ctx context.Context, playlistID, actor string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistUseCase) AddVideo(ctx context.Context, playlistID, videoID, actor string) (*domain.PlaylistVideoRes, error) {
	args := m.Called(ctx, playlistID, videoID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.PlaylistVideoRes), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistUseCase) RemoveVideo(ctx context.Context, playlistID, videoID, actor string) (*domain.PlaylistVideoRes, error) {
	args := m.Called(ctx, playlistID, videoID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.PlaylistVideoRes), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLikeUseCase mock app.LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleVideoLike(ctx context.Context, videoID, actor string) (*domain.ToggleLikeRes, error) {
	args := m.Called(ctx, videoID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ToggleLikeRes), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLikeUseCase) ToggleCommentLike(ctx context.Context, commentID, actor string) (*domain.ToggleLikeRes, error) {
	args := m.Called(ctx, commentID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ToggleLikeRes), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLikeUseCase) ToggleTweetLike(ctx context.Context, tweetID, actor string) (*domain.ToggleLikeRes, error) {
	args := m.Called(ctx, tweetID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ToggleLikeRes), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLikeUseCase) LikedVideos(ctx context.Context, actor string) ([]domain.LikedVideo, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.LikedVideo), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSubscriptionUseCase mock app.SubscriptionUseCase
type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) ToggleSubscription(ctx context.Context, channelID, actor string) (*domain.ToggleSubscriptionRes, error) {
	args := m.Called(ctx, channelID, actor)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ToggleSubscriptionRes), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubscriptionUseCase) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockDashboardUseCase mock app.DashboardUseCase
type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) ChannelStats(ctx context.Context, owner string) (*domain.ChannelStats, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChannelStats), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDashboardUseCase) ChannelVideos(ctx context.Context, owner string) ([]domain.Video, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}
