package app

import (
	"context"
	"errors"
	"testing"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	errprocess "video_platform_service/pkg/err"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	videoID := primitive.NewObjectID()

	t.Run("空白內容不寫入", func(t *testing.T) {
		comments, videos := new(MockStore[domain.Comment]), new(MockStore[domain.Video])
		uc := NewCommentUseCase(comments, videos)

		_, err := uc.AddComment(ctx, videoID.Hex(), owner, "   ")
		assert.True(t, errprocess.IsKind(err, errprocess.KindBadRequest))
		comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		videos.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("影片不存在", func(t *testing.T) {
		comments, videos := new(MockStore[domain.Comment]), new(MockStore[domain.Video])
		videos.On("FindByID", ctx, videoID).Return(nil, repository.ErrNotFound)

		_, err := NewCommentUseCase(comments, videos).AddComment(ctx, videoID.Hex(), owner, "nice")
		assert.True(t, errprocess.IsKind(err, errprocess.KindNotFound))
	})

	t.Run("新增成功", func(t *testing.T) {
		comments, videos := new(MockStore[domain.Comment]), new(MockStore[domain.Video])
		videos.On("FindByID", ctx, videoID).Return(&domain.Video{ID: videoID}, nil)
		comments.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.Content == "nice" && c.Video == videoID && c.Owner == owner
		})).Return(nil)

		c, err := NewCommentUseCase(comments, videos).AddComment(ctx, videoID.Hex(), owner, " nice ")
		require.NoError(t, err)
		assert.Equal(t, "nice", c.Content)
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()
	videoID := primitive.NewObjectID()

	comments, videos := new(MockStore[domain.Comment]), new(MockStore[domain.Video])
	videos.On("FindByID", ctx, videoID).Return(&domain.Video{ID: videoID}, nil)
	comments.On("Find", ctx, bson.M{"video": videoID}, mock.MatchedBy(func(o repository.FindOptions) bool {
		return o.Skip == 10 && o.Limit == 10 && o.Sort[0].Key == "created_at"
	})).Return([]domain.Comment{{Content: "a"}, {Content: "b"}}, nil)
	comments.On("Count", ctx, bson.M{"video": videoID}).Return(int64(12), nil)

	page, err := NewCommentUseCase(comments, videos).ListComments(ctx, videoID.Hex(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalPages)
	assert.LessOrEqual(t, len(page.Items), page.Limit)
	assert.False(t, page.HasNextPage)
	assert.True(t, page.HasPrevPage)
}

func TestUpdateDeleteComment(t *testing.T) {
	ctx := context.Background()
	c := domain.NewComment(primitive.NewObjectID(), owner, "old")

	t.Run("非擁有者無法修改", func(t *testing.T) {
		comments := new(MockStore[domain.Comment])
		comments.On("FindByID", ctx, c.ID).Return(c, nil)
		_, err := NewCommentUseCase(comments, nil).UpdateComment(ctx, c.ID.Hex(), "other", "new")
		assert.True(t, errprocess.IsKind(err, errprocess.KindForbidden))
	})

	t.Run("修改空白內容", func(t *testing.T) {
		comments := new(MockStore[domain.Comment])
		_, err := NewCommentUseCase(comments, nil).UpdateComment(ctx, c.ID.Hex(), owner, "")
		assert.True(t, errprocess.IsKind(err, errprocess.KindBadRequest))
		comments.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("刪除", func(t *testing.T) {
		comments := new(MockStore[domain.Comment])
		comments.On("FindByID", ctx, c.ID).Return(c, nil)
		comments.On("DeleteByID", ctx, c.ID).Return(c, nil)
		got, err := NewCommentUseCase(comments, nil).DeleteComment(ctx, c.ID.Hex(), owner)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
	})

	t.Run("資料庫錯誤", func(t *testing.T) {
		comments := new(MockStore[domain.Comment])
		comments.On("FindByID", ctx, c.ID).Return(nil, errors.New("db down"))
		_, err := NewCommentUseCase(comments, nil).DeleteComment(ctx, c.ID.Hex(), owner)
		assert.True(t, errprocess.IsKind(err, errprocess.KindInternal))
	})
}
