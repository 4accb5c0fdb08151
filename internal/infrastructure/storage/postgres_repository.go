package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"Pindexa/internal/domain"
	"Pindexa/internal/ports"
)

const uniqueViolation = "23505"

// PostgresRepository persists dashboard accounts and login sessions.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var (
	_ ports.UserRepository    = (*PostgresRepository)(nil)
	_ ports.SessionRepository = (*PostgresRepository)(nil)
)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// FindUserByEmail loads the account registered under email.
func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

// FindUserByID loads the account with the given id.
func (r *PostgresRepository) FindUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

func (r *PostgresRepository) findUser(ctx context.Context, where sq.Eq) (domain.User, error) {
	if r.db == nil {
		return domain.User{}, domain.ErrUserNotFound
	}

	query, args, err := r.builder.
		Select("id", "name", "email", "password_hash", "created_at").
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build user query: %w", err)
	}

	var user domain.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}

// CreateUser inserts a new account and returns it with its generated fields.
func (r *PostgresRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if r.db == nil {
		return domain.User{}, errors.New("postgres is not configured")
	}

	query, args, err := r.builder.
		Insert("users").
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build insert user: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// CreateSession stores a freshly issued session token.
func (r *PostgresRepository) CreateSession(ctx context.Context, session domain.Session) error {
	if r.db == nil {
		return errors.New("postgres is not configured")
	}

	query, args, err := r.builder.
		Insert("sessions").
		Columns("token", "user_id", "created_at", "expires_at").
		Values(session.Token, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert session: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// FindSession loads a session by token regardless of expiry.
func (r *PostgresRepository) FindSession(ctx context.Context, token string) (domain.Session, error) {
	if r.db == nil {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	query, args, err := r.builder.
		Select("token", "user_id", "created_at", "expires_at").
		From("sessions").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return domain.Session{}, fmt.Errorf("build session query: %w", err)
	}

	var session domain.Session
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&session.Token, &session.UserID, &session.CreatedAt, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("query session: %w", err)
	}

	return session, nil
}

// DeleteSession removes a session; deleting an unknown token is not an error.
func (r *PostgresRepository) DeleteSession(ctx context.Context, token string) error {
	if r.db == nil {
		return nil
	}

	query, args, err := r.builder.
		Delete("sessions").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete session: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// DeleteExpiredSessions purges sessions that expired before the given time.
func (r *PostgresRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	if r.db == nil {
		return 0, nil
	}

	query, args, err := r.builder.
		Delete("sessions").
		Where(sq.Lt{"expires_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sweep sessions: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sweep sessions rows: %w", err)
	}

	return removed, nil
}
