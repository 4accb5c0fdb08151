package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"Pindexa/internal/domain"
	"Pindexa/internal/ports"
)

// FileFeedSource reads the prediction feed from a JSON file on local disk.
type FileFeedSource struct {
	path string
}

var _ ports.FeedSource = (*FileFeedSource)(nil)

// NewFileFeedSource wires the path of the published predictions.json.
func NewFileFeedSource(path string) *FileFeedSource {
	return &FileFeedSource{path: path}
}

// Name identifies the source inside the registry.
func (s *FileFeedSource) Name() string {
	return "file"
}

// ReadFeed loads and decodes the whole file on every call.
func (s *FileFeedSource) ReadFeed(ctx context.Context) (domain.Feed, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feed{}, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Feed{}, fmt.Errorf("%w: %s", domain.ErrFeedNotFound, s.path)
		}
		return domain.Feed{}, fmt.Errorf("read feed %s: %w", s.path, err)
	}

	return decodeFeed(raw)
}

func decodeFeed(raw []byte) (domain.Feed, error) {
	var feed domain.Feed
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&feed); err != nil {
		return domain.Feed{}, fmt.Errorf("%w: %v", domain.ErrFeedMalformed, err)
	}
	if feed.Predictions == nil {
		feed.Predictions = []domain.Prediction{}
	}
	return feed, nil
}
