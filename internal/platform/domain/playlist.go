package domain

import (
	"time"

	"video_platform_service/pkg"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistCollection mongo collection name
const PlaylistCollection = "playlists"

// Playlist 播放清單, videos 不重複且保持加入順序
type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id" json:"_id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Owner       string               `bson:"owner" json:"owner"`
	Videos      []primitive.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updatedAt"`
}

// NewPlaylist create empty playlist
func NewPlaylist(owner, name, description string) *Playlist {
	now := time.Now().UTC()
	return &Playlist{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Owner:       owner,
		Videos:      []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasVideo check playlist contains video
func (p *Playlist) HasVideo(id primitive.ObjectID) bool {
	return pkg.Contains(p.Videos, id)
}

// PlaylistVideoRes usecase add/remove video response
type PlaylistVideoRes struct {
	Message  string
	Playlist *Playlist
}
