package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"Pindexa/internal/auth"
	"Pindexa/internal/config"
	"Pindexa/internal/feed"
	"Pindexa/internal/infrastructure/footballdata"
	"Pindexa/internal/infrastructure/scheduler"
	"Pindexa/internal/infrastructure/storage"
	"Pindexa/internal/league"
	"Pindexa/internal/logging"
	"Pindexa/internal/usecase"
	"Pindexa/internal/web"
)

const shutdownTimeout = 10 * time.Second

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	server  *http.Server
	sweeper *usecase.SessionSweeper
	db      *sql.DB
}

// New builds the runnable application from configuration.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	source, err := buildFeedSource(ctx, cfg.Feed)
	if err != nil {
		return nil, err
	}
	loader := feed.NewLoader(source, time.Now, baseLogger.With("component", "feed", "source", source.Name()))

	var upstream league.Upstream
	if cfg.FootballData.APIKey != "" {
		upstream = footballdata.NewClient(cfg.FootballData, nil)
	} else {
		baseLogger.Info("football-data.org api key not set, league widgets use static data")
	}
	leagueSvc := league.NewService(
		upstream,
		league.NewCache(cfg.FootballData.CacheTTL, time.Now),
		baseLogger.With("component", "league"),
	)

	application := &Application{cfg: cfg, logger: baseLogger}

	var authenticator web.Authenticator
	if db := connectAccounts(ctx, cfg.Database.DSN, baseLogger); db != nil {
		application.db = db

		repo := storage.NewPostgresRepository(db)
		authenticator = auth.NewService(repo, repo, auth.Options{
			SessionTTL: cfg.Auth.SessionTTL,
			BcryptCost: cfg.Auth.BcryptCost,
		}, baseLogger.With("component", "auth"))

		application.sweeper = usecase.NewSessionSweeper(
			scheduler.NewTickerScheduler(cfg.Auth.SweepInterval),
			repo,
			baseLogger.With("component", "sweeper"),
		)
	}

	pages := usecase.NewPages(usecase.PagesDeps{Feed: loader, League: leagueSvc})
	srv, err := web.NewServer(web.Deps{
		Pages:          pages,
		League:         leagueSvc,
		Auth:           authenticator,
		Logger:         baseLogger.With("component", "http"),
		Cookie:         web.CookieConfig{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure},
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})
	if err != nil {
		application.close()
		return nil, fmt.Errorf("build http server: %w", err)
	}

	application.server = &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return application, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	defer a.close()

	if a.sweeper != nil {
		if err := a.sweeper.Start(ctx); err != nil {
			return fmt.Errorf("start session sweeper: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.sweeper != nil {
		if err := a.sweeper.Stop(shutdownCtx); err != nil {
			a.logger.Warn("stop session sweeper", slog.Any("error", err))
		}
	}

	a.logger.Info("shutting down http server")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// connectAccounts opens the account database. A missing DSN or an unreachable
// database leaves accounts disabled while the public pages keep serving.
func connectAccounts(ctx context.Context, dsn string, logger *slog.Logger) *sql.DB {
	if dsn == "" {
		logger.Warn("database dsn not set, accounts are disabled")
		return nil
	}

	db, err := openDatabase(ctx, dsn)
	if err != nil {
		logger.Error("database unavailable, accounts are disabled", slog.Any("error", err))
		return nil
	}
	return db
}

func (a *Application) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("close database", slog.Any("error", err))
	}
	a.db = nil
}
