package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Mayuushi/freedom-wall-music/bootstrap"
	"github.com/Mayuushi/freedom-wall-music/config"
	"github.com/Mayuushi/freedom-wall-music/database"
	"github.com/Mayuushi/freedom-wall-music/internal/repository"
	"github.com/Mayuushi/freedom-wall-music/internal/routes"
	"github.com/Mayuushi/freedom-wall-music/internal/youtube"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func connect(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoMaxPoolSize)
}

// openStore returns the configured post store and its cleanup.
func openStore(ctx context.Context, cfg config.Config) (repository.PostRepository, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store, posts are lost on restart")
		return repository.NewMemoryPostRepository(), func() {}, nil
	}

	client, err := connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	db := client.Database(cfg.MongoDB)

	// Feed sort and cursor tie-break
	if err := bootstrap.EnsurePostIndexes(ctx, db); err != nil {
		database.Disconnect(client, shutdownTimeout)
		return nil, nil, fmt.Errorf("ensure indexes: %w", err)
	}

	cleanup := func() { database.Disconnect(client, shutdownTimeout) }
	return repository.NewMongoPostRepository(db, cfg.DBTimeout), cleanup, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.YouTubeAPIKey == "" {
		log.Warn("YOUTUBE_API_KEY is not set, video search will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	posts, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	app := routes.NewApp(cfg, routes.Deps{
		Posts:  posts,
		Videos: youtube.NewClient(cfg.YouTubeAPIKey, cfg.YouTubeBaseURL, cfg.YouTubeTimeout),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "port", cfg.Port, "store", cfg.Store)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}

func runIndexes(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Disconnect(client, shutdownTimeout)

	if err := bootstrap.EnsurePostIndexes(ctx, client.Database(cfg.MongoDB)); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	log.Infow("indexes ready", "db", cfg.MongoDB, "index", bootstrap.FeedIndexName)
	return nil
}
