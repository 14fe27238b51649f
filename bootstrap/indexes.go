package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Mayuushi/freedom-wall-music/internal/repository"
)

const FeedIndexName = "feed_created_at_id"

// EnsurePostIndexes backs the feed sort and its cursor tie-break.
func EnsurePostIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(repository.PostsCollection).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "createdAt", Value: -1},
				{Key: "_id", Value: -1},
			},
			Options: options.Index().SetName(FeedIndexName),
		},
	)
	return err
}
