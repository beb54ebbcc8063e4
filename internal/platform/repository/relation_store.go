package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// RelationStore store of (actor, target) unique relations
type RelationStore[T any] interface {
	Store[T]
	// Toggle 刪除符合 filter 的紀錄，不存在則新增 doc。created 表示結果為存在
	Toggle(ctx context.Context, filter interface{}, doc *T) (record *T, created bool, err error)
}

type mongoRelationStore[T any] struct {
	*mongoStore[T]
}

// NewRelationStore create a RelationStore over db.collection, the collection needs a unique index on the filter fields
func NewRelationStore[T any](db *mongo.Database, collection string) RelationStore[T] {
	return &mongoRelationStore[T]{mongoStore: &mongoStore[T]{coll: db.Collection(collection)}}
}

func (s *mongoRelationStore[T]) Toggle(ctx context.Context, filter interface{}, doc *T) (*T, bool, error) {
	var existing T
	err := s.coll.FindOneAndDelete(ctx, filter).Decode(&existing)
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return nil, false, err
		}
		// 同時間另一個請求已新增
		winner, ferr := s.FindOne(ctx, filter)
		if ferr != nil {
			return nil, false, ferr
		}
		return winner, true, nil
	}
	return doc, true, nil
}
