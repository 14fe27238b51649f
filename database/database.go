package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ConnectMongo opens the process-wide client pool and pings the primary.
func ConnectMongo(ctx context.Context, uri string, maxPoolSize uint64) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)
	if maxPoolSize > 0 {
		opts.SetMaxPoolSize(maxPoolSize)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Infow("connected to MongoDB", "maxPoolSize", maxPoolSize)
	return client, nil
}

// Disconnect closes the pool, waiting at most timeout for in-flight work.
func Disconnect(client *mongo.Client, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warnw("mongo disconnect", "error", err)
	}
}
