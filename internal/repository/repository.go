package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	videosCollection = "videos"
	usersCollection  = "users"
)

type Repositories struct {
	Video   VideoRepository
	User    UserRepository
	Session SessionStore
}

func NewRepositories(db *mongo.Database, redis *redis.Client) *Repositories {
	return &Repositories{
		Video:   NewVideoRepository(db),
		User:    NewUserRepository(db),
		Session: NewSessionStore(redis),
	}
}

// EnsureIndexes creates the indexes the repositories rely on. Listing a
// user's videos scans the compound (userId, createdAt) index; user lookup
// by email is unique.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection(videosCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
