package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"video_platform_service/internal/platform/domain"
	errprocess "video_platform_service/pkg/err"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCommentHandler(t *testing.T) {
	uc := new(MockCommentUseCase)
	h := NewCommentHandler(uc)
	app := newTestApp(actor)
	app.Get("/comments/:videoId", h.ListComments)
	app.Post("/comments/:videoId", h.AddComment)
	app.Patch("/comments/:commentId", h.UpdateComment)

	t.Run("新增留言", func(t *testing.T) {
		c := &domain.Comment{ID: primitive.NewObjectID(), Content: "nice"}
		uc.On("AddComment", mock.Anything, "vid", actor, "nice").Return(c, nil).Once()

		resp, err := app.Test(jsonRequest("POST", "/comments/vid", `{"content":"nice"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("body 格式錯誤回 400", func(t *testing.T) {
		resp, err := app.Test(jsonRequest("PATCH", "/comments/cid", `{"content":`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid request body", decode(t, resp).Message)
	})

	t.Run("分頁參數", func(t *testing.T) {
		uc.On("ListComments", mock.Anything, "vid", 3, 20).
			Return(domain.NewPage[domain.Comment](nil, 0, 3, 20), nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/comments/vid?page=3&limit=20", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(decode(t, resp).Data), `"docs":[]`)
	})

	uc.AssertExpectations(t)
}

func TestTweetHandler(t *testing.T) {
	uc := new(MockTweetUseCase)
	h := NewTweetHandler(uc)
	app := newTestApp(actor)
	app.Get("/tweets/:userId", h.GetUserTweets)
	app.Delete("/tweets/:tweetId", h.DeleteTweet)

	t.Run("沒有 tweet 回空陣列", func(t *testing.T) {
		uc.On("GetUserTweets", mock.Anything, actor).Return([]domain.Tweet{}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/tweets/"+actor, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", string(decode(t, resp).Data))
	})

	t.Run("刪除別人的 tweet 回 403", func(t *testing.T) {
		uc.On("DeleteTweet", mock.Anything, "tid", actor).
			Return(nil, errprocess.Forbidden("Only the owner can delete this tweet")).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/tweets/tid", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	uc.AssertExpectations(t)
}

func TestPlaylistHandler(t *testing.T) {
	uc := new(MockPlaylistUseCase)
	h := NewPlaylistHandler(uc)
	app := newTestApp(actor)
	app.Post("/playlists", h.CreatePlaylist)
	app.Patch("/playlists/:playlistId/videos/:videoId", h.AddVideo)
	app.Delete("/playlists/:playlistId/videos/:videoId", h.RemoveVideo)

	p := domain.NewPlaylist(actor, "Fav", "mine")

	t.Run("建立播放清單", func(t *testing.T) {
		uc.On("CreatePlaylist", mock.Anything, actor, "Fav", "mine").Return(p, nil).Once()

		resp, err := app.Test(jsonRequest("POST", "/playlists", `{"name":"Fav","description":"mine"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("重複加入回傳 usecase 訊息", func(t *testing.T) {
		uc.On("AddVideo", mock.Anything, "pid", "vid", actor).
			Return(&domain.PlaylistVideoRes{Message: "Video already exists in playlist", Playlist: p}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("PATCH", "/playlists/pid/videos/vid", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Video already exists in playlist", decode(t, resp).Message)
	})

	t.Run("移除影片", func(t *testing.T) {
		uc.On("RemoveVideo", mock.Anything, "pid", "vid", actor).
			Return(&domain.PlaylistVideoRes{Message: "Video removed from playlist", Playlist: p}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/playlists/pid/videos/vid", nil))
		require.NoError(t, err)
		assert.Equal(t, "Video removed from playlist", decode(t, resp).Message)
	})

	uc.AssertExpectations(t)
}

func TestLikeHandler(t *testing.T) {
	uc := new(MockLikeUseCase)
	h := NewLikeHandler(uc)
	app := newTestApp(actor)
	app.Post("/likes/video/:videoId", h.ToggleVideoLike)
	app.Post("/likes/tweet/:tweetId", h.ToggleTweetLike)

	t.Run("按讚", func(t *testing.T) {
		like := domain.NewLike(actor, domain.VideoTarget(primitive.NewObjectID()))
		uc.On("ToggleVideoLike", mock.Anything, "vid", actor).
			Return(&domain.ToggleLikeRes{Liked: true, Like: like}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/likes/video/vid", nil))
		require.NoError(t, err)
		env := decode(t, resp)
		assert.Equal(t, "Video liked successfully", env.Message)
		assert.Contains(t, string(env.Data), `"liked":true`)
	})

	t.Run("取消讚", func(t *testing.T) {
		uc.On("ToggleTweetLike", mock.Anything, "tid", actor).
			Return(&domain.ToggleLikeRes{Liked: false}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/likes/tweet/tid", nil))
		require.NoError(t, err)
		assert.Equal(t, "Tweet unliked successfully", decode(t, resp).Message)
	})

	uc.AssertExpectations(t)
}

func TestSubscriptionHandler(t *testing.T) {
	uc := new(MockSubscriptionUseCase)
	h := NewSubscriptionHandler(uc)
	app := newTestApp(actor)
	app.Post("/subscriptions/:channelId", h.ToggleSubscription)

	t.Run("訂閱自己回 400", func(t *testing.T) {
		uc.On("ToggleSubscription", mock.Anything, actor, actor).
			Return(nil, errprocess.BadRequest("You cannot subscribe to your own channel")).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/subscriptions/"+actor, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("訂閱成功", func(t *testing.T) {
		uc.On("ToggleSubscription", mock.Anything, "channel-2", actor).
			Return(&domain.ToggleSubscriptionRes{Subscribed: true}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/subscriptions/channel-2", nil))
		require.NoError(t, err)
		assert.Equal(t, "Subscribed successfully", decode(t, resp).Message)
	})

	uc.AssertExpectations(t)
}

func TestDashboardHandler(t *testing.T) {
	uc := new(MockDashboardUseCase)
	h := NewDashboardHandler(uc)
	app := newTestApp(actor)
	app.Get("/dashboard/stats", h.ChannelStats)

	uc.On("ChannelStats", mock.Anything, actor).
		Return(&domain.ChannelStats{TotalVideos: 2, TotalViews: 15}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := string(decode(t, resp).Data)
	assert.Contains(t, data, `"totalVideos":2`)
	assert.Contains(t, data, `"totalViews":15`)
	uc.AssertExpectations(t)
}

func TestSharedHandlers(t *testing.T) {
	app := newTestApp("")
	app.Get("/", ConnectCheck)
	app.Post("/debug", DebugLogFlag)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/debug?service=platform&status=maybe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
