package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/pkg/database"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// MediaGateway 上傳本地暫存檔到 object storage / 刪除遠端物件
type MediaGateway interface {
	// Upload 空路徑回傳 nil, nil。本地檔案一律刪除
	Upload(ctx context.Context, localPath string) (*domain.RemoteMedia, error)
	Delete(ctx context.Context, remoteURL string, kind domain.MediaKind) error
}

type mediaGateway struct {
	storage database.MinIOClientRepo
	baseURL string
}

// test 可替換
var (
	removeFile = os.Remove

	probeDuration = func(localPath string) float64 {
		out, err := ffmpeg.Probe(localPath)
		if err != nil {
			logger.Log.Warn("ffprobe failed", zap.String("path", localPath), zap.Error(err))
			return 0
		}
		return parseProbeDuration(out)
	}
)

func init() {
	for ext, typ := range map[string]string{
		".mp4":  "video/mp4",
		".mov":  "video/quicktime",
		".webm": "video/webm",
		".mkv":  "video/x-matroska",
		".avi":  "video/x-msvideo",
	} {
		if mime.TypeByExtension(ext) == "" {
			_ = mime.AddExtensionType(ext, typ)
		}
	}
}

// NewMediaGateway create a MediaGateway from an explicit connection setting
func NewMediaGateway(storage database.MinIOClientRepo, conn database.MinIOConnection) MediaGateway {
	base := strings.TrimRight(conn.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if conn.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + conn.Endpoint
	}
	return &mediaGateway{storage: storage, baseURL: base}
}

func (g *mediaGateway) Upload(ctx context.Context, localPath string) (*domain.RemoteMedia, error) {
	if localPath == "" {
		return nil, nil
	}
	defer func() {
		if err := removeFile(localPath); err != nil && !os.IsNotExist(err) {
			logger.Log.Warn("remove temp file failed", zap.String("path", localPath), zap.Error(err))
		}
	}()

	ext := strings.ToLower(filepath.Ext(localPath))
	contentType := mime.TypeByExtension(ext)
	kind := MediaKindOf(contentType)

	publicID := uuid.NewString()
	objectName := path.Join(string(kind), publicID)

	size, err := g.storage.UploadFile(ctx, objectName, localPath, contentType)
	if err != nil {
		return nil, errprocess.Media(fmt.Sprintf("upload %s failed", filepath.Base(localPath)), err)
	}

	media := &domain.RemoteMedia{
		URL:      g.baseURL + "/" + g.storage.Bucket() + "/" + objectName,
		PublicID: publicID,
		Kind:     kind,
		Size:     size,
	}
	if kind == domain.MediaVideo {
		media.Duration = probeDuration(localPath)
	}

	logger.Log.Debug("media uploaded", zap.String("url", media.URL), zap.Int64("size", size))
	return media, nil
}

func (g *mediaGateway) Delete(ctx context.Context, remoteURL string, kind domain.MediaKind) error {
	if remoteURL == "" {
		return nil
	}
	publicID := PublicIDOf(remoteURL)
	if publicID == "" {
		return errprocess.Media("invalid media url", fmt.Errorf("url %q", remoteURL))
	}

	if err := g.storage.RemoveObject(ctx, path.Join(string(kind), publicID)); err != nil {
		return errprocess.Media("delete media failed", err)
	}
	return nil
}

// PublicIDOf final path segment of url without extension
func PublicIDOf(remoteURL string) string {
	u := remoteURL
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	last := path.Base(u)
	if last == "." || last == "/" {
		return ""
	}
	return strings.TrimSuffix(last, path.Ext(last))
}

// KindOfURL media kind encoded in the object key of url, fallback when absent
func KindOfURL(remoteURL string, fallback domain.MediaKind) domain.MediaKind {
	u := remoteURL
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	switch k := domain.MediaKind(path.Base(path.Dir(u))); k {
	case domain.MediaVideo, domain.MediaImage, domain.MediaRaw:
		return k
	}
	return fallback
}

// MediaKindOf content type -> media kind
func MediaKindOf(contentType string) domain.MediaKind {
	switch {
	case strings.HasPrefix(contentType, "video/"):
		return domain.MediaVideo
	case strings.HasPrefix(contentType, "image/"):
		return domain.MediaImage
	default:
		return domain.MediaRaw
	}
}

func parseProbeDuration(probe string) float64 {
	var out struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(probe), &out); err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(out.Format.Duration, 64)
	if err != nil {
		return 0
	}
	return d
}
