package starpick

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/starpick-admin/internal/domain/session"
	"github.com/riskibarqy/starpick-admin/internal/domain/user"
)

// Authenticator exchanges admin credentials for a session token.
type Authenticator struct {
	client *Client
	now    func() time.Time
}

func NewAuthenticator(client *Client) *Authenticator {
	return &Authenticator{client: client, now: time.Now}
}

func (a *Authenticator) Login(ctx context.Context, creds user.Credentials) (session.Session, error) {
	raw, err := a.client.post(ctx, "/auth/admin/login", creds)
	if err != nil {
		return session.Session{}, err
	}

	var payload struct {
		Token string         `json:"token"`
		User  user.Principal `json:"user"`
	}
	if err := decodeAt(raw, &payload, "data"); err != nil {
		return session.Session{}, err
	}
	if strings.TrimSpace(payload.Token) == "" {
		return session.Session{}, malformed([]any{"data", "token"}, "token is empty")
	}

	return session.Session{
		Token:   payload.Token,
		User:    payload.User,
		SavedAt: a.now().UTC(),
	}, nil
}

// Rearm re-enables the 401 handler once a fresh session is stored.
func (a *Authenticator) Rearm() {
	a.client.Rearm()
}
