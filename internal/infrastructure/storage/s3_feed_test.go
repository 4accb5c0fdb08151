package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"Pindexa/internal/domain"
)

type fakeObjectGetter struct {
	body  string
	err   error
	input *s3.GetObjectInput
}

func (f *fakeObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3FeedSourceReadFeed(t *testing.T) {
	t.Parallel()

	getter := &fakeObjectGetter{body: sampleFeed}
	src := NewS3FeedSource(getter, "pindexa-feeds", "data/predictions.json")

	feed, err := src.ReadFeed(context.Background())
	if err != nil {
		t.Fatalf("ReadFeed: %v", err)
	}
	if feed.TotalPredictions != 2 || feed.Predictions[0].PredictedWinner != "Arsenal" {
		t.Fatalf("unexpected feed: %+v", feed)
	}
	if aws.ToString(getter.input.Bucket) != "pindexa-feeds" || aws.ToString(getter.input.Key) != "data/predictions.json" {
		t.Fatalf("unexpected object requested: %+v", getter.input)
	}
}

func TestS3FeedSourceErrors(t *testing.T) {
	t.Parallel()

	missing := NewS3FeedSource(&fakeObjectGetter{err: &types.NoSuchKey{}}, "b", "k")
	if _, err := missing.ReadFeed(context.Background()); !errors.Is(err, domain.ErrFeedNotFound) {
		t.Fatalf("expected ErrFeedNotFound, got %v", err)
	}

	broken := NewS3FeedSource(&fakeObjectGetter{body: "not json"}, "b", "k")
	if _, err := broken.ReadFeed(context.Background()); !errors.Is(err, domain.ErrFeedMalformed) {
		t.Fatalf("expected ErrFeedMalformed, got %v", err)
	}

	unconfigured := NewS3FeedSource(nil, "", "k")
	if _, err := unconfigured.ReadFeed(context.Background()); err == nil {
		t.Fatalf("expected misconfiguration error")
	}
}
