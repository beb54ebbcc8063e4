package repository

import (
	"context"
	"errors"
	"fmt"

	"video_platform_service/internal/platform/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound record absent
var ErrNotFound = fmt.Errorf("record not found: %w", mongo.ErrNoDocuments)

// FindOptions skip / limit / sort / projection of Find
type FindOptions struct {
	Skip       int64
	Limit      int64
	Sort       bson.D
	Projection bson.M
}

// Store 單一 collection 的 CRUD 與 aggregation
type Store[T any] interface {
	Create(ctx context.Context, doc *T) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	FindOne(ctx context.Context, filter interface{}) (*T, error)
	Find(ctx context.Context, filter interface{}, opt FindOptions) ([]T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)
	DistinctIDs(ctx context.Context, filter interface{}) ([]primitive.ObjectID, error)
	// update 可為 update document 或 pipeline
	UpdateByID(ctx context.Context, id primitive.ObjectID, update interface{}) (*T, error)
	UpdateOne(ctx context.Context, filter, update interface{}) (*T, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	Aggregate(ctx context.Context, pipeline interface{}, out interface{}) error
	AggregatePaginate(ctx context.Context, pipeline mongo.Pipeline, page, limit int) (*domain.Page[T], error)
}

type mongoStore[T any] struct {
	coll *mongo.Collection
}

// NewStore create a Store over db.collection
func NewStore[T any](db *mongo.Database, collection string) Store[T] {
	return &mongoStore[T]{coll: db.Collection(collection)}
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *mongoStore[T]) Create(ctx context.Context, doc *T) error {
	_, err := s.coll.InsertOne(ctx, doc)
	return err
}

func (s *mongoStore[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *mongoStore[T]) FindOne(ctx context.Context, filter interface{}) (*T, error) {
	var doc T
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	return &doc, nil
}

func (s *mongoStore[T]) Find(ctx context.Context, filter interface{}, opt FindOptions) ([]T, error) {
	opts := options.Find()
	if opt.Skip > 0 {
		opts.SetSkip(opt.Skip)
	}
	if opt.Limit > 0 {
		opts.SetLimit(opt.Limit)
	}
	if len(opt.Sort) > 0 {
		opts.SetSort(opt.Sort)
	}
	if len(opt.Projection) > 0 {
		opts.SetProjection(opt.Projection)
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor All error: %w", err)
	}
	return docs, nil
}

func (s *mongoStore[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	return s.coll.CountDocuments(ctx, filter)
}

func (s *mongoStore[T]) DistinctIDs(ctx context.Context, filter interface{}) ([]primitive.ObjectID, error) {
	values, err := s.coll.Distinct(ctx, "_id", filter)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *mongoStore[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update interface{}) (*T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (s *mongoStore[T]) UpdateOne(ctx context.Context, filter, update interface{}) (*T, error) {
	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	return &doc, nil
}

func (s *mongoStore[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	return &doc, nil
}

func (s *mongoStore[T]) Aggregate(ctx context.Context, pipeline interface{}, out interface{}) error {
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate error: %w", err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("cursor All error: %w", err)
	}
	return nil
}

// AggregatePaginate 以 $facet 同時取得當頁資料與總數
func (s *mongoStore[T]) AggregatePaginate(ctx context.Context, pipeline mongo.Pipeline, page, limit int) (*domain.Page[T], error) {
	page, limit = domain.NormalizePage(page, limit)

	facet := bson.D{{Key: "$facet", Value: bson.D{
		{Key: "items", Value: bson.A{
			bson.D{{Key: "$skip", Value: domain.Skip(page, limit)}},
			bson.D{{Key: "$limit", Value: int64(limit)}},
		}},
		{Key: "total", Value: bson.A{
			bson.D{{Key: "$count", Value: "count"}},
		}},
	}}}

	full := make(mongo.Pipeline, 0, len(pipeline)+1)
	full = append(full, pipeline...)
	full = append(full, facet)

	var result []struct {
		Items []T `bson:"items"`
		Total []struct {
			Count int64 `bson:"count"`
		} `bson:"total"`
	}
	if err := s.Aggregate(ctx, full, &result); err != nil {
		return nil, err
	}

	var items []T
	var total int64
	if len(result) > 0 {
		items = result[0].Items
		if len(result[0].Total) > 0 {
			total = result[0].Total[0].Count
		}
	}
	return domain.NewPage(items, total, page, limit), nil
}
