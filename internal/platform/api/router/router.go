package router

import (
	"video_platform_service/internal/platform/api/handlers"
	"video_platform_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handlers 所有 entity handler
type Handlers struct {
	Video        *handlers.VideoHandler
	Comment      *handlers.CommentHandler
	Tweet        *handlers.TweetHandler
	Playlist     *handlers.PlaylistHandler
	Like         *handlers.LikeHandler
	Subscription *handlers.SubscriptionHandler
	Dashboard    *handlers.DashboardHandler
}

// RegisterRoutes 注册平台路由
// @title Video Platform Service API
// @version 1.0
// @description API documentation for Video Platform Service
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	api := app.Group("/api/v1", middlewares.JWTMiddleware())

	videos := api.Group("/videos")
	videos.Get("/", h.Video.ListVideos)
	videos.Post("/", h.Video.PublishVideo)
	videos.Get("/:videoId", h.Video.GetVideo)
	videos.Patch("/:videoId", h.Video.UpdateVideo)
	videos.Delete("/:videoId", h.Video.DeleteVideo)
	videos.Patch("/:videoId/publish", h.Video.TogglePublish)

	comments := api.Group("/comments")
	comments.Get("/:videoId", h.Comment.ListComments)
	comments.Post("/:videoId", h.Comment.AddComment)
	comments.Patch("/:commentId", h.Comment.UpdateComment)
	comments.Delete("/:commentId", h.Comment.DeleteComment)

	tweets := api.Group("/tweets")
	tweets.Post("/", h.Tweet.CreateTweet)
	tweets.Get("/:userId", h.Tweet.GetUserTweets)
	tweets.Patch("/:tweetId", h.Tweet.UpdateTweet)
	tweets.Delete("/:tweetId", h.Tweet.DeleteTweet)

	playlists := api.Group("/playlists")
	playlists.Post("/", h.Playlist.CreatePlaylist)
	// 必須在 /:playlistId 之前
	playlists.Get("/user/:userId", h.Playlist.GetUserPlaylists)
	playlists.Get("/:playlistId", h.Playlist.GetPlaylist)
	playlists.Patch("/:playlistId", h.Playlist.UpdatePlaylist)
	playlists.Delete("/:playlistId", h.Playlist.DeletePlaylist)
	playlists.Patch("/:playlistId/videos/:videoId", h.Playlist.AddVideo)
	playlists.Delete("/:playlistId/videos/:videoId", h.Playlist.RemoveVideo)

	likes := api.Group("/likes")
	likes.Post("/video/:videoId", h.Like.ToggleVideoLike)
	likes.Post("/comment/:commentId", h.Like.ToggleCommentLike)
	likes.Post("/tweet/:tweetId", h.Like.ToggleTweetLike)
	likes.Get("/videos", h.Like.LikedVideos)

	subscriptions := api.Group("/subscriptions")
	subscriptions.Post("/:channelId", h.Subscription.ToggleSubscription)
	subscriptions.Get("/channel/:channelId", h.Subscription.ListSubscribers)
	subscriptions.Get("/subscriber/:subscriberId", h.Subscription.ListSubscribedChannels)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", h.Dashboard.ChannelStats)
	dashboard.Get("/videos", h.Dashboard.ChannelVideos)
}
