package repository

import (
	"context"
	"fmt"

	"video_platform_service/internal/platform/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var indexes = map[string][]mongo.IndexModel{
	domain.LikeCollection: {
		{
			Keys:    bson.D{{Key: "liked_by", Value: 1}, {Key: "target.kind", Value: 1}, {Key: "target.id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "target.kind", Value: 1}, {Key: "target.id", Value: 1}}},
	},
	domain.SubscriptionCollection: {
		{
			Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "channel", Value: 1}}},
	},
	domain.VideoCollection: {
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "created_at", Value: -1}}},
	},
	domain.CommentCollection: {
		{Keys: bson.D{{Key: "video", Value: 1}, {Key: "created_at", Value: -1}}},
	},
	domain.TweetCollection: {
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}},
	},
	domain.PlaylistCollection: {
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	},
}

// EnsureIndexes 啟動時建立 unique 與查詢用 index
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
