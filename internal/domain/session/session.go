package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/riskibarqy/starpick-admin/internal/domain/user"
)

var ErrNoSession = errors.New("no session")

// Session is the persisted authentication state of the console.
type Session struct {
	Token   string         `json:"token"`
	User    user.Principal `json:"user"`
	SavedAt time.Time      `json:"saved_at"`
}

// Expired reports whether a JWT token has passed its exp claim. Opaque tokens
// and tokens without exp never expire client-side.
func (s Session) Expired(now time.Time) bool {
	if s.Token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), false)
}

// Store persists the session between invocations.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// Authenticator exchanges admin credentials for a session.
type Authenticator interface {
	Login(ctx context.Context, creds user.Credentials) (Session, error)
	// Rearm re-enables unauthorized handling after a new session is saved.
	Rearm()
}
