package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clipstream/internal/domain"
)

type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Video, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
}

type videoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) VideoRepository {
	return &videoRepository{col: db.Collection(videosCollection)}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, video)
	if err != nil {
		return err
	}
	video.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var video domain.Video
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Video, error) {
	// Newest first; _id breaks createdAt ties in insertion order.
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.col.Find(ctx, bson.M{"userId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var video domain.Video
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}
