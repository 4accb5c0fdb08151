package ports

import (
	"context"
	"time"

	"Pindexa/internal/domain"
)

// FeedSource reads the raw prediction feed from its backing store.
type FeedSource interface {
	Name() string
	ReadFeed(ctx context.Context) (domain.Feed, error)
}

// UserRepository persists dashboard accounts.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)
	FindUserByID(ctx context.Context, id int64) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	FindSession(ctx context.Context, token string) (domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

// LeagueData serves decorative league content (standings, scorer, fixture).
type LeagueData interface {
	Standings(ctx context.Context) []domain.Standing
	TopScorer(ctx context.Context) domain.TopScorer
	NextFixture(ctx context.Context) domain.Fixture
}

// Scheduler runs a job periodically until stopped.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}

// Clock abstracts time for components that need deterministic tests.
type Clock func() time.Time
