package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TweetCollection mongo collection name
const TweetCollection = "tweets"

// Tweet 短貼文
type Tweet struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	Owner     string             `bson:"owner" json:"owner"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// NewTweet create tweet
func NewTweet(owner, content string) *Tweet {
	now := time.Now().UTC()
	return &Tweet{
		ID:        primitive.NewObjectID(),
		Content:   content,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
