package usecase

import (
	"context"
	"log/slog"
	"time"

	"Pindexa/internal/ports"
)

// SessionSweeper periodically purges expired login sessions.
type SessionSweeper struct {
	driver   ports.Scheduler
	sessions ports.SessionRepository
	logger   *slog.Logger
}

// NewSessionSweeper wires the scheduler with session storage.
func NewSessionSweeper(driver ports.Scheduler, sessions ports.SessionRepository, logger *slog.Logger) *SessionSweeper {
	return &SessionSweeper{driver: driver, sessions: sessions, logger: logger}
}

// Start registers the sweep job with the scheduler.
func (s *SessionSweeper) Start(ctx context.Context) error {
	if s.driver == nil || s.sessions == nil {
		return nil
	}

	return s.driver.Start(ctx, func(trigger time.Time) {
		s.Sweep(ctx, trigger)
	})
}

// Sweep removes sessions that expired before now.
func (s *SessionSweeper) Sweep(ctx context.Context, now time.Time) {
	removed, err := s.sessions.DeleteExpiredSessions(ctx, now)
	if s.logger == nil {
		return
	}
	if err != nil {
		s.logger.Warn("session sweep failed", slog.Any("error", err))
		return
	}
	if removed > 0 {
		s.logger.Info("expired sessions removed", slog.Int64("count", removed))
	}
}

// Stop gracefully tears down the underlying scheduler.
func (s *SessionSweeper) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
