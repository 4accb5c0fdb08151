package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"Pindexa/internal/domain"
	"Pindexa/internal/ports"
)

// ObjectGetter is the subset of the S3 client used to read the feed.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3FeedSource reads the prediction feed from a single S3 object.
type S3FeedSource struct {
	client ObjectGetter
	bucket string
	key    string
}

var _ ports.FeedSource = (*S3FeedSource)(nil)

// NewS3FeedSource wires an S3 client with the bucket and key of the feed object.
func NewS3FeedSource(client ObjectGetter, bucket, key string) *S3FeedSource {
	return &S3FeedSource{client: client, bucket: bucket, key: key}
}

// Name identifies the source inside the registry.
func (s *S3FeedSource) Name() string {
	return "s3"
}

// ReadFeed downloads and decodes the feed object.
func (s *S3FeedSource) ReadFeed(ctx context.Context) (domain.Feed, error) {
	if s.client == nil || s.bucket == "" {
		return domain.Feed{}, fmt.Errorf("s3 feed source misconfigured")
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return domain.Feed{}, fmt.Errorf("%w: s3://%s/%s", domain.ErrFeedNotFound, s.bucket, s.key)
		}
		return domain.Feed{}, fmt.Errorf("get feed object: %w", err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("read feed object: %w", err)
	}

	return decodeFeed(raw)
}
