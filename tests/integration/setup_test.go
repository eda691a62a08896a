//go:build integration
// +build integration

package integration_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultMongoURI = "mongodb://localhost:27017"
	defaultRedisURL = "redis://localhost:6379"
	testDBName      = "clipstream_test"
)

type TestEnv struct {
	DB    *mongo.Database
	Redis *redis.Client
}

func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = defaultMongoURI
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, readpref.Primary()), "MongoDB not ready")

	db := client.Database(testDBName)
	require.NoError(t, db.Drop(ctx))

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = defaultRedisURL
	}
	opt, err := redis.ParseURL(redisURL)
	require.NoError(t, err)
	redisClient := redis.NewClient(opt)
	require.NoError(t, redisClient.Ping(ctx).Err(), "Redis not ready")

	return &TestEnv{
		DB:    db,
		Redis: redisClient,
	}
}

func (e *TestEnv) Teardown() {
	ctx := context.Background()
	if e.DB != nil {
		_ = e.DB.Drop(ctx)
		_ = e.DB.Client().Disconnect(ctx)
	}
	if e.Redis != nil {
		_ = e.Redis.Close()
	}
}
