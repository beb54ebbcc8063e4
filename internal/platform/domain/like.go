package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeCollection mongo collection name
const LikeCollection = "likes"

// LikeKind 被按讚的實體種類
type LikeKind string

const (
	// LikeVideo like on video
	LikeVideo LikeKind = "video"
	// LikeComment like on comment
	LikeComment LikeKind = "comment"
	// LikeTweet like on tweet
	LikeTweet LikeKind = "tweet"
)

// LikeTarget exactly one liked entity
type LikeTarget struct {
	Kind LikeKind           `bson:"kind" json:"kind"`
	ID   primitive.ObjectID `bson:"id" json:"id"`
}

// VideoTarget like target of a video
func VideoTarget(id primitive.ObjectID) LikeTarget {
	return LikeTarget{Kind: LikeVideo, ID: id}
}

// CommentTarget like target of a comment
func CommentTarget(id primitive.ObjectID) LikeTarget {
	return LikeTarget{Kind: LikeComment, ID: id}
}

// TweetTarget like target of a tweet
func TweetTarget(id primitive.ObjectID) LikeTarget {
	return LikeTarget{Kind: LikeTweet, ID: id}
}

// Like 按讚紀錄, (liked_by, target) unique
type Like struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	LikedBy   string             `bson:"liked_by" json:"likedBy"`
	Target    LikeTarget         `bson:"target" json:"target"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// NewLike create like
func NewLike(actor string, target LikeTarget) *Like {
	return &Like{
		ID:        primitive.NewObjectID(),
		LikedBy:   actor,
		Target:    target,
		CreatedAt: time.Now().UTC(),
	}
}

// ToggleLikeRes usecase toggle like response
type ToggleLikeRes struct {
	Liked bool  `json:"liked"`
	Like  *Like `json:"like"`
}

// LikedVideo like joined with its video
type LikedVideo struct {
	Like  `bson:",inline"`
	Video *Video `bson:"video" json:"video"`
}
