package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"video_platform_service/internal/platform/api/router"
	"video_platform_service/internal/platform/repository"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/response"
	t_token "video_platform_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	logger.SetNewNop()
}

// emptyDirectory 沒有任何會員, 記錄被查詢的 id
type emptyDirectory struct {
	mu      sync.Mutex
	queried []string
}

func (d *emptyDirectory) Exists(_ context.Context, memberID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queried = append(d.queried, memberID)
	return false, nil
}

func TestNewHandlers(t *testing.T) {
	ctx := context.Background()

	// Connect 不會立即連線, 以下請求都在碰到 mongo 前結束
	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	users := &emptyDirectory{}
	r := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	router.RegisterRoutes(r, newHandlers(platformDeps{
		db:     client.Database("wiring"),
		users:  users,
		events: repository.NewEventPublisher(nil),
		stats:  repository.NewStatsCache(nil, 0),
		tmpDir: t.TempDir(),
	}))

	actor := uuid.NewString()
	tok, err := t_token.GenerateJWT(actor, "user", "test")
	require.NoError(t, err)

	get := func(target string) *http.Response {
		req := httptest.NewRequest("GET", target, nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := r.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("需要會員目錄的 usecase 都有注入", func(t *testing.T) {
		member := uuid.NewString()
		for _, target := range []string{
			"/api/v1/playlists/user/" + member,
			"/api/v1/tweets/" + member,
			"/api/v1/subscriptions/channel/" + member,
			"/api/v1/subscriptions/subscriber/" + member,
			"/api/v1/dashboard/stats",
		} {
			resp := get(target)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, target)
		}
		assert.Equal(t, []string{member, member, member, member, actor}, users.queried)
	})

	t.Run("無效 id 回 400", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/videos/not-an-id",
			"/api/v1/comments/not-an-id",
			"/api/v1/playlists/not-an-id",
		} {
			resp := get(target)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
		}
	})
}
