package domain

// MediaKind remote object category, also the object key prefix
type MediaKind string

const (
	// MediaVideo video file
	MediaVideo MediaKind = "video"
	// MediaImage image file
	MediaImage MediaKind = "image"
	// MediaRaw anything else
	MediaRaw MediaKind = "raw"
)

// RemoteMedia 上傳後的遠端物件
type RemoteMedia struct {
	URL      string    `json:"url"`
	PublicID string    `json:"publicId"`
	Kind     MediaKind `json:"kind"`
	Duration float64   `json:"duration"`
	Size     int64     `json:"size"`
}

// CleanupQueueName queue of remote objects that failed to delete
const CleanupQueueName = "media_cleanup"

// CleanupJob 待刪除的遠端物件
type CleanupJob struct {
	URL    string    `json:"url"`
	Kind   MediaKind `json:"kind"`
	Reason string    `json:"reason"`
}
