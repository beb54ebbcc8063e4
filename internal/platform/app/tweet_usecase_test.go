package app

import (
	"context"
	"testing"

	"video_platform_service/internal/platform/domain"
	errprocess "video_platform_service/pkg/err"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCreateTweet(t *testing.T) {
	ctx := context.Background()

	t.Run("空白內容", func(t *testing.T) {
		tweets := new(MockStore[domain.Tweet])
		_, err := NewTweetUseCase(tweets, new(MockUsers)).CreateTweet(ctx, owner, "\n\t")
		assert.True(t, errprocess.IsKind(err, errprocess.KindBadRequest))
		tweets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("新增成功", func(t *testing.T) {
		tweets := new(MockStore[domain.Tweet])
		tweets.On("Create", ctx, mock.Anything).Return(nil)
		tw, err := NewTweetUseCase(tweets, new(MockUsers)).CreateTweet(ctx, owner, "hello")
		require.NoError(t, err)
		assert.Equal(t, owner, tw.Owner)
	})
}

func TestGetUserTweets(t *testing.T) {
	ctx := context.Background()

	t.Run("無效 user id", func(t *testing.T) {
		_, err := NewTweetUseCase(new(MockStore[domain.Tweet]), new(MockUsers)).GetUserTweets(ctx, "abc")
		assert.True(t, errprocess.IsKind(err, errprocess.KindBadRequest))
	})

	t.Run("使用者不存在", func(t *testing.T) {
		users := new(MockUsers)
		users.On("Exists", ctx, owner).Return(false, nil)
		_, err := NewTweetUseCase(new(MockStore[domain.Tweet]), users).GetUserTweets(ctx, owner)
		assert.True(t, errprocess.IsKind(err, errprocess.KindNotFound))
	})

	t.Run("沒有貼文回傳空陣列", func(t *testing.T) {
		users := new(MockUsers)
		users.On("Exists", ctx, owner).Return(true, nil)
		tweets := new(MockStore[domain.Tweet])
		tweets.On("Find", ctx, bson.M{"owner": owner}, mock.Anything).Return([]domain.Tweet{}, nil)

		got, err := NewTweetUseCase(tweets, users).GetUserTweets(ctx, owner)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Len(t, got, 0)
	})
}

func TestUpdateDeleteTweet(t *testing.T) {
	ctx := context.Background()
	tw := domain.NewTweet(owner, "hi")

	tweets := new(MockStore[domain.Tweet])
	tweets.On("FindByID", ctx, tw.ID).Return(tw, nil)
	tweets.On("UpdateByID", ctx, tw.ID, mock.Anything).Return(&domain.Tweet{ID: tw.ID, Content: "edited", Owner: owner}, nil)
	tweets.On("DeleteByID", ctx, tw.ID).Return(tw, nil)
	uc := NewTweetUseCase(tweets, new(MockUsers))

	_, err := uc.UpdateTweet(ctx, tw.ID.Hex(), "other", "edited")
	assert.True(t, errprocess.IsKind(err, errprocess.KindForbidden))

	got, err := uc.UpdateTweet(ctx, tw.ID.Hex(), owner, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)

	_, err = uc.DeleteTweet(ctx, "bad", owner)
	assert.True(t, errprocess.IsKind(err, errprocess.KindBadRequest))

	_, err = uc.DeleteTweet(ctx, tw.ID.Hex(), owner)
	assert.NoError(t, err)
}
