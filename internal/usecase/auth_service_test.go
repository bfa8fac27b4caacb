package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/starpick-admin/internal/domain/session"
	"github.com/riskibarqy/starpick-admin/internal/domain/user"
	"github.com/riskibarqy/starpick-admin/internal/infrastructure/sessionstore"
	sessionmock "github.com/riskibarqy/starpick-admin/internal/mocks/domain/session"
)

func TestAuthService_LoginValidatesBeforeCallingBackend(t *testing.T) {
	t.Parallel()

	auth := sessionmock.NewAuthenticator(t)
	store := sessionstore.NewMemoryStore(session.Session{})
	svc := NewAuthService(auth, store, nil, nil)

	_, err := svc.Login(context.Background(), "not-an-email", "123")
	var fields *FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if fields.First("email") == "" || fields.First("password") == "" {
		t.Fatalf("expected email and password errors, got %+v", fields.Fields)
	}
	if svc.LoginFieldErrors() == nil {
		t.Fatalf("form must keep the last field errors")
	}
}

func TestAuthService_LoginStoresSessionAndRearms(t *testing.T) {
	t.Parallel()

	auth := sessionmock.NewAuthenticator(t)
	store := sessionstore.NewMemoryStore(session.Session{})
	notifier := &RecordingNotifier{}
	svc := NewAuthService(auth, store, notifier, nil)

	sess := session.Session{Token: "opaque-token", User: user.Principal{ID: 1, Name: "Admin", Email: "admin@starpick.io"}}
	auth.
		On("Login", mock.Anything, user.Credentials{Email: "admin@starpick.io", Password: "secret1"}).
		Return(sess, nil).
		Once()
	auth.On("Rearm").Return().Once()

	principal, err := svc.Login(context.Background(), " admin@starpick.io ", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if principal.ID != 1 {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	stored, err := store.Load(context.Background())
	if err != nil || stored.Token != "opaque-token" {
		t.Fatalf("session not stored: %+v err=%v", stored, err)
	}
	current, err := svc.Current(context.Background())
	if err != nil || current.Email != "admin@starpick.io" {
		t.Fatalf("current: %+v err=%v", current, err)
	}
	if toast, _ := notifier.Last(); toast.Kind != ToastSuccess {
		t.Fatalf("expected welcome toast, got %+v", toast)
	}
}

func TestAuthService_LoginRejectedByServer(t *testing.T) {
	t.Parallel()

	auth := sessionmock.NewAuthenticator(t)
	store := sessionstore.NewMemoryStore(session.Session{})
	notifier := &RecordingNotifier{}
	svc := NewAuthService(auth, store, notifier, nil)

	auth.On("Login", mock.Anything, mock.Anything).Return(session.Session{}, ErrUnauthorized).Once()

	if _, err := svc.Login(context.Background(), "admin@starpick.io", "wrongpass"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("no session must be stored, got %v", err)
	}
	if toast, _ := notifier.Last(); toast.Description != "Invalid email or password." {
		t.Fatalf("unexpected toast: %+v", toast)
	}
}

func TestAuthService_CurrentClearsExpiredSession(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": now.Add(-time.Minute).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	store := sessionstore.NewMemoryStore(session.Session{})
	if err := store.Save(context.Background(), session.Session{Token: token}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	svc := NewAuthService(sessionmock.NewAuthenticator(t), store, nil, nil)
	svc.now = func() time.Time { return now }

	if _, err := svc.Current(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if store.Clears() != 1 {
		t.Fatalf("expired session must be cleared")
	}
	if _, err := svc.Current(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without session, got %v", err)
	}
}
