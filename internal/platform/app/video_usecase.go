package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	errprocess "video_platform_service/pkg/err"
	"video_platform_service/pkg/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// VideoUseCase 影片相關應用服務
type VideoUseCase interface {
	ListVideos(ctx context.Context, req domain.ListVideosReq) (*domain.Page[domain.Video], error)
	PublishVideo(ctx context.Context, req domain.PublishVideoReq) (*domain.Video, error)
	GetVideo(ctx context.Context, videoID, viewer string) (*domain.Video, error)
	UpdateVideo(ctx context.Context, req domain.UpdateVideoReq) (*domain.Video, error)
	DeleteVideo(ctx context.Context, videoID, actor string) (*domain.Video, error)
	TogglePublish(ctx context.Context, videoID, actor string) (*domain.Video, error)
}

type videoUseCase struct {
	videos  repository.Store[domain.Video]
	media   repository.MediaGateway
	cleanup repository.CleanupQueue
	events  repository.EventPublisher
}

// NewVideoUseCase create VideoUseCase
func NewVideoUseCase(videos repository.Store[domain.Video],
	media repository.MediaGateway,
	cleanup repository.CleanupQueue,
	events repository.EventPublisher,
) VideoUseCase {
	return &videoUseCase{
		videos:  videos,
		media:   media,
		cleanup: cleanup,
		events:  events,
	}
}

var videoListProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "video_file", Value: 1},
	{Key: "thumbnail", Value: 1},
	{Key: "title", Value: 1},
	{Key: "description", Value: 1},
	{Key: "duration", Value: 1},
	{Key: "views", Value: 1},
	{Key: "owner", Value: 1},
	{Key: "created_at", Value: 1},
}

func (s *videoUseCase) ListVideos(ctx context.Context, req domain.ListVideosReq) (*domain.Page[domain.Video], error) {
	match := bson.M{"is_published": true}

	if q := strings.TrimSpace(req.Query); q != "" {
		match["title"] = bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
	}
	if req.UserID != "" {
		if _, err := uuid.Parse(req.UserID); err != nil {
			return nil, errprocess.BadRequest("Invalid user id")
		}
		match["owner"] = req.UserID
	}

	field, ok := domain.VideoSortFields[req.SortBy]
	if !ok {
		field = domain.VideoSortFields["createdAt"]
	}
	dir := -1
	if strings.EqualFold(req.SortType, "asc") {
		dir = 1
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}}},
		bson.D{{Key: "$project", Value: videoListProjection}},
	}

	page, err := s.videos.AggregatePaginate(ctx, pipeline, req.Page, req.Limit)
	if err != nil {
		return nil, errprocess.Internal("failed to fetch videos", err)
	}
	return page, nil
}

// PublishVideo 上傳影片與縮圖後才寫入資料庫，失敗時刪除已上傳的物件
func (s *videoUseCase) PublishVideo(ctx context.Context, req domain.PublishVideoReq) (*domain.Video, error) {
	defer discardTemp(req.VideoPath, req.ThumbnailPath)

	if blank(req.Title) || blank(req.Description) || req.VideoPath == "" || req.ThumbnailPath == "" {
		return nil, errprocess.BadRequest("All fields are required")
	}

	video, err := s.media.Upload(ctx, req.VideoPath)
	if err != nil {
		return nil, err
	}

	thumbnail, err := s.media.Upload(ctx, req.ThumbnailPath)
	if err != nil {
		s.compensate(ctx, "thumbnail upload failed", video)
		return nil, err
	}

	v := domain.NewVideo(strings.TrimSpace(req.Title), strings.TrimSpace(req.Description), req.Owner, video, thumbnail)
	if err := s.videos.Create(ctx, v); err != nil {
		s.compensate(ctx, "persist video failed", video, thumbnail)
		return nil, errprocess.Internal("Something went wrong while publishing the video", err)
	}

	emit(ctx, s.events, domain.NewActivityEvent(domain.EventVideoPublished, req.Owner, v.ID.Hex()))
	return v, nil
}

func (s *videoUseCase) GetVideo(ctx context.Context, videoID, viewer string) (*domain.Video, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"is_published": true},
			bson.M{"owner": viewer},
		},
	}
	v, err := s.videos.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return nil, storageErr(err, "Video not found", "failed to fetch video")
	}
	return v, nil
}

// UpdateVideo 新縮圖: 上傳 -> 寫入 -> 刪除舊縮圖
func (s *videoUseCase) UpdateVideo(ctx context.Context, req domain.UpdateVideoReq) (*domain.Video, error) {
	defer discardTemp(req.ThumbnailPath)

	id, err := parseObjectID(req.VideoID, "video id")
	if err != nil {
		return nil, err
	}
	if blank(req.Title) && blank(req.Description) && req.ThumbnailPath == "" {
		return nil, errprocess.BadRequest("At least one field is required to update")
	}

	current, err := s.owned(ctx, id, req.Actor)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if !blank(req.Title) {
		set["title"] = strings.TrimSpace(req.Title)
	}
	if !blank(req.Description) {
		set["description"] = strings.TrimSpace(req.Description)
	}

	thumbnail, err := s.media.Upload(ctx, req.ThumbnailPath)
	if err != nil {
		return nil, err
	}
	if thumbnail != nil {
		set["thumbnail"] = thumbnail.URL
	}

	updated, err := s.videos.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		s.compensate(ctx, "persist video update failed", thumbnail)
		return nil, storageErr(err, "Video not found", "Something went wrong while updating the video")
	}

	if thumbnail != nil {
		old := &domain.RemoteMedia{URL: current.Thumbnail, Kind: repository.KindOfURL(current.Thumbnail, domain.MediaImage)}
		s.compensate(ctx, "replaced thumbnail", old)
	}
	return updated, nil
}

// DeleteVideo 先刪遠端物件，失敗時保留紀錄
func (s *videoUseCase) DeleteVideo(ctx context.Context, videoID, actor string) (*domain.Video, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}

	v, err := s.owned(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if err := s.media.Delete(ctx, v.VideoFile, repository.KindOfURL(v.VideoFile, domain.MediaVideo)); err != nil {
		return nil, err
	}
	if v.Thumbnail != "" {
		if err := s.media.Delete(ctx, v.Thumbnail, repository.KindOfURL(v.Thumbnail, domain.MediaImage)); err != nil {
			return nil, err
		}
	}

	deleted, err := s.videos.DeleteByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Video not found", "Something went wrong while deleting the video")
	}

	emit(ctx, s.events, domain.NewActivityEvent(domain.EventVideoDeleted, actor, id.Hex()))
	return deleted, nil
}

func (s *videoUseCase) TogglePublish(ctx context.Context, videoID, actor string) (*domain.Video, error) {
	id, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, id, actor); err != nil {
		return nil, err
	}

	toggle := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_published", Value: bson.D{{Key: "$not", Value: bson.A{"$is_published"}}}},
		{Key: "updated_at", Value: "$$NOW"},
	}}}}
	v, err := s.videos.UpdateByID(ctx, id, toggle)
	if err != nil {
		return nil, storageErr(err, "Video not found", "failed to toggle publish status")
	}
	return v, nil
}

func (s *videoUseCase) owned(ctx context.Context, id primitive.ObjectID, actor string) (*domain.Video, error) {
	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr(err, "Video not found", "failed to fetch video")
	}
	if v.Owner != actor {
		return nil, errprocess.Forbidden("You are not the owner of this video")
	}
	return v, nil
}

// compensate 刪除已上傳物件，刪除失敗則排入 cleanup queue
func (s *videoUseCase) compensate(ctx context.Context, reason string, media ...*domain.RemoteMedia) {
	ctx = context.WithoutCancel(ctx)
	for _, m := range media {
		if m == nil || m.URL == "" {
			continue
		}
		if err := s.media.Delete(ctx, m.URL, m.Kind); err == nil {
			continue
		}

		job := domain.CleanupJob{URL: m.URL, Kind: m.Kind, Reason: reason}
		if err := s.cleanup.Enqueue(job); err != nil {
			logger.Log.Error(fmt.Sprintf("enqueue cleanup of %s failed, object orphaned", m.URL), zap.Error(err))
		}
	}
}
