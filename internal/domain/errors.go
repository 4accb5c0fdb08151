package domain

import "errors"

var (
	// ErrFeedNotFound means the backing store has no feed to read.
	ErrFeedNotFound = errors.New("feed not found")
	// ErrFeedMalformed means the stored feed could not be decoded.
	ErrFeedMalformed = errors.New("feed malformed")

	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrSessionNotFound = errors.New("session not found")
)
