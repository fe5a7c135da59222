package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound means the token has no live session (missing or expired).
var ErrNotFound = errors.New("session not found")

// Session is the server-side record an opaque cookie token resolves to.
type Session struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// Store keeps sessions server-side; the client only ever holds the token.
type Store interface {
	Create(ctx context.Context, userID uuid.UUID, username string) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// NewToken returns an opaque session token.
func NewToken() string {
	return uuid.NewString()
}

// DefaultTTL bounds how long an idle session stays valid.
const DefaultTTL = 24 * time.Hour
