package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"Pindexa/internal/config"
	"Pindexa/internal/feed"
	"Pindexa/internal/infrastructure/storage"
	"Pindexa/internal/ports"
)

// buildFeedSource registers every configured backend and resolves the selected one.
func buildFeedSource(ctx context.Context, cfg config.FeedConfig) (ports.FeedSource, error) {
	registry := feed.NewRegistry()
	registry.Register(storage.NewFileFeedSource(cfg.Path))

	if cfg.Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		registry.Register(storage.NewS3FeedSource(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Key))
	}

	source, err := registry.Resolve(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("resolve feed source: %w", err)
	}
	return source, nil
}

func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := storage.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	return db, nil
}
