package feed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"Pindexa/internal/domain"
	"Pindexa/internal/ports"
)

// Loader turns a FeedSource read into a Feed that is always structurally valid.
type Loader struct {
	source ports.FeedSource
	now    ports.Clock
	logger *slog.Logger
}

// NewLoader wires the backing source; a nil clock defaults to time.Now.
func NewLoader(source ports.FeedSource, now ports.Clock, logger *slog.Logger) *Loader {
	if now == nil {
		now = time.Now
	}
	return &Loader{source: source, now: now, logger: logger}
}

// Load reads the feed fresh from the source. Every failure degrades to the empty feed.
func (l *Loader) Load(ctx context.Context) domain.Feed {
	if l.source == nil {
		return domain.EmptyFeed(l.now())
	}

	feed, err := l.source.ReadFeed(ctx)
	if err != nil {
		l.logFailure(err)
		return domain.EmptyFeed(l.now())
	}

	if feed.TotalPredictions != len(feed.Predictions) {
		l.warn("feed total does not match predictions",
			"total_predictions", feed.TotalPredictions,
			"predictions", len(feed.Predictions))
		feed.TotalPredictions = len(feed.Predictions)
	}

	l.debug("feed loaded", "source", l.source.Name(), "date", feed.Date, "count", len(feed.Predictions))
	return feed
}

func (l *Loader) logFailure(err error) {
	kind := "unavailable"
	switch {
	case errors.Is(err, domain.ErrFeedNotFound):
		kind = "not_found"
	case errors.Is(err, domain.ErrFeedMalformed):
		kind = "malformed"
	}
	l.warn("feed read failed, serving empty feed", "source", l.source.Name(), "kind", kind, "error", err)
}

func (l *Loader) warn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}

func (l *Loader) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}
