package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"Pindexa/internal/domain"
	"Pindexa/internal/ports"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

var (
	ErrMissingFields      = errors.New("name, email, and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrAccountExists      = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
)

// Service handles signup, credential checks and session tokens.
type Service struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	now        ports.Clock
	sessionTTL time.Duration
	cost       int
	logger     *slog.Logger
}

// Options tunes hashing cost and session lifetime.
type Options struct {
	SessionTTL time.Duration
	BcryptCost int
	Clock      ports.Clock
}

// NewService wires account and session storage.
func NewService(users ports.UserRepository, sessions ports.SessionRepository, opts Options, logger *slog.Logger) *Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * 24 * time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		now:        opts.Clock,
		sessionTTL: opts.SessionTTL,
		cost:       opts.BcryptCost,
		logger:     logger,
	}
}

// SignupInput is the payload accepted by Signup.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validates input and stores a new account with a hashed password.
func (s *Service) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return domain.User{}, ErrMissingFields
	}
	if len(in.Password) < MinPasswordLength {
		return domain.User{}, ErrPasswordTooShort
	}

	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrAccountExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, domain.User{Name: name, Email: email, PasswordHash: string(hash)})
	if errors.Is(err, domain.ErrEmailTaken) {
		return domain.User{}, ErrAccountExists
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	s.info("account created", slog.Int64("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a session.
func (s *Service) Login(ctx context.Context, email, password string) (domain.Session, domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, domain.User{}, ErrInvalidCredentials
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.Session{}, domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Session{}, domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, domain.User{}, ErrInvalidCredentials
	}

	now := s.now().UTC()
	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return domain.Session{}, domain.User{}, fmt.Errorf("store session: %w", err)
	}

	return session, user, nil
}

// Authenticate resolves a session token to its user. Unknown or expired
// tokens yield ErrUnauthenticated.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, ErrUnauthenticated
	}

	session, err := s.sessions.FindSession(ctx, token)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.User{}, ErrUnauthenticated
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("lookup session: %w", err)
	}
	if session.Expired(s.now()) {
		return domain.User{}, ErrUnauthenticated
	}

	user, err := s.users.FindUserByID(ctx, session.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, ErrUnauthenticated
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("lookup session user: %w", err)
	}

	return user, nil
}

// Logout discards the session behind token.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SessionTTL reports how long issued sessions stay valid.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *Service) info(msg string, attrs ...any) {
	if s.logger != nil {
		s.logger.Info(msg, attrs...)
	}
}
