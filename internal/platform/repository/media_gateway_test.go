package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.SetNewNop()
}

func tempFile(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("data"), 0644))
	return p
}

func TestMediaGatewayUpload(t *testing.T) {
	conn := database.MinIOConnection{Endpoint: "minio:9000", PublicBaseURL: "http://cdn.local/"}

	origProbe := probeDuration
	defer func() { probeDuration = origProbe }()
	probeDuration = func(string) float64 { return 12.5 }

	t.Run("空路徑回傳 nil", func(t *testing.T) {
		g := NewMediaGateway(new(MockMinIO), conn)
		media, err := g.Upload(context.Background(), "")
		assert.NoError(t, err)
		assert.Nil(t, media)
	})

	t.Run("影片上傳成功並刪除暫存檔", func(t *testing.T) {
		m := new(MockMinIO)
		p := tempFile(t, "clip.mp4")
		m.On("UploadFile", mock.Anything, mock.MatchedBy(func(o string) bool {
			return strings.HasPrefix(o, "video/")
		}), p, "video/mp4").Return(int64(4), nil)

		media, err := NewMediaGateway(m, conn).Upload(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, domain.MediaVideo, media.Kind)
		assert.Equal(t, 12.5, media.Duration)
		assert.Equal(t, int64(4), media.Size)
		assert.Equal(t, "http://cdn.local/media/video/"+media.PublicID, media.URL)

		_, statErr := os.Stat(p)
		assert.True(t, os.IsNotExist(statErr))
		m.AssertExpectations(t)
	})

	t.Run("圖片不做 probe", func(t *testing.T) {
		m := new(MockMinIO)
		p := tempFile(t, "thumb.png")
		m.On("UploadFile", mock.Anything, mock.Anything, p, "image/png").Return(int64(4), nil)

		media, err := NewMediaGateway(m, conn).Upload(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, domain.MediaImage, media.Kind)
		assert.Zero(t, media.Duration)
	})

	t.Run("上傳失敗回傳 MediaError 且暫存檔仍刪除", func(t *testing.T) {
		m := new(MockMinIO)
		p := tempFile(t, "clip.mp4")
		m.On("UploadFile", mock.Anything, mock.Anything, p, mock.Anything).Return(int64(0), errors.New("boom"))

		media, err := NewMediaGateway(m, conn).Upload(context.Background(), p)
		assert.Nil(t, media)
		assert.True(t, errprocess.IsKind(err, errprocess.KindMedia))

		_, statErr := os.Stat(p)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("未設定 public url 使用 endpoint", func(t *testing.T) {
		m := new(MockMinIO)
		p := tempFile(t, "doc.bin")
		m.On("UploadFile", mock.Anything, mock.Anything, p, mock.Anything).Return(int64(4), nil)

		media, err := NewMediaGateway(m, database.MinIOConnection{Endpoint: "minio:9000", UseSSL: true}).Upload(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, domain.MediaRaw, media.Kind)
		assert.True(t, strings.HasPrefix(media.URL, "https://minio:9000/media/raw/"))
	})
}

func TestMediaGatewayDelete(t *testing.T) {
	conn := database.MinIOConnection{Endpoint: "minio:9000"}

	t.Run("以 public id 刪除", func(t *testing.T) {
		m := new(MockMinIO)
		m.On("RemoveObject", mock.Anything, "image/abc").Return(nil)
		err := NewMediaGateway(m, conn).Delete(context.Background(), "http://minio:9000/media/image/abc.png", domain.MediaImage)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("空 url 不動作", func(t *testing.T) {
		m := new(MockMinIO)
		assert.NoError(t, NewMediaGateway(m, conn).Delete(context.Background(), "", domain.MediaVideo))
		m.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything)
	})

	t.Run("刪除失敗", func(t *testing.T) {
		m := new(MockMinIO)
		m.On("RemoveObject", mock.Anything, "video/xyz").Return(errors.New("denied"))
		err := NewMediaGateway(m, conn).Delete(context.Background(), "http://minio:9000/media/video/xyz", domain.MediaVideo)
		assert.True(t, errprocess.IsKind(err, errprocess.KindMedia))
	})
}

func TestPublicIDOf(t *testing.T) {
	assert.Equal(t, "abc", PublicIDOf("http://x/bucket/video/abc.mp4"))
	assert.Equal(t, "abc", PublicIDOf("http://x/bucket/video/abc"))
	assert.Equal(t, "abc", PublicIDOf("http://x/bucket/video/abc.mp4?token=1"))
	assert.Equal(t, "", PublicIDOf(""))
}

func TestKindOfURL(t *testing.T) {
	assert.Equal(t, domain.MediaRaw, KindOfURL("http://x/bucket/raw/abc", domain.MediaImage))
	assert.Equal(t, domain.MediaVideo, KindOfURL("http://x/bucket/video/abc?x=1", domain.MediaImage))
	assert.Equal(t, domain.MediaImage, KindOfURL("http://res.example.com/other/abc.png", domain.MediaImage))
}

func TestParseProbeDuration(t *testing.T) {
	assert.Equal(t, 3.5, parseProbeDuration(`{"format":{"duration":"3.500000"}}`))
	assert.Zero(t, parseProbeDuration(`{"format":{}}`))
	assert.Zero(t, parseProbeDuration(`not json`))
}
