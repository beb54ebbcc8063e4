package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoCollection mongo collection name
const VideoCollection = "videos"

// Video 影片 document
type Video struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	VideoFile   string             `bson:"video_file" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"is_published" json:"isPublished"`
	Owner       string             `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// NewVideo build a published video from uploaded media
func NewVideo(title, description, owner string, video, thumbnail *RemoteMedia) *Video {
	now := time.Now().UTC()
	return &Video{
		ID:          primitive.NewObjectID(),
		VideoFile:   video.URL,
		Thumbnail:   thumbnail.URL,
		Title:       title,
		Description: description,
		Duration:    video.Duration,
		IsPublished: true,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ListVideosReq usecase list video request
type ListVideosReq struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string
	UserID   string
}

// PublishVideoReq usecase publish video request, paths are local temp files
type PublishVideoReq struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
	Owner         string
}

// UpdateVideoReq usecase update video request, empty field means unchanged
type UpdateVideoReq struct {
	VideoID       string
	Actor         string
	Title         string
	Description   string
	ThumbnailPath string
}

// VideoSortFields 前端欄位 -> document 欄位
var VideoSortFields = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}
