package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentCollection mongo collection name
const CommentCollection = "comments"

// Comment 影片留言
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	Video     primitive.ObjectID `bson:"video" json:"video"`
	Owner     string             `bson:"owner" json:"owner"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// NewComment create comment on video
func NewComment(video primitive.ObjectID, owner, content string) *Comment {
	now := time.Now().UTC()
	return &Comment{
		ID:        primitive.NewObjectID(),
		Content:   content,
		Video:     video,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
