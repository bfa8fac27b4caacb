package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/starpick-admin/internal/domain/session"
	"github.com/riskibarqy/starpick-admin/internal/domain/user"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

type AuthService struct {
	auth     session.Authenticator
	store    session.Store
	notifier Notifier
	logger   *logging.Logger
	now      func() time.Time
	form     FormRequest
}

func NewAuthService(auth session.Authenticator, store session.Store, notifier Notifier, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		auth:     auth,
		store:    store,
		notifier: notifierOrNop(notifier),
		logger:   logger,
		now:      time.Now,
	}
}

// Login validates the credentials, exchanges them for a token and stores the
// session. Field problems come back as *FieldErrors.
func (s *AuthService) Login(ctx context.Context, email, password string) (user.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	creds := user.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	var sess session.Session
	err := s.form.Submit(ctx, creds, func(ctx context.Context) error {
		var err error
		sess, err = s.auth.Login(ctx, creds)
		return err
	})
	if err != nil {
		var fields *FieldErrors
		switch {
		case errors.As(err, &fields):
			s.notifier.Notify(failure("Login failed", fields.Error()))
		case errors.Is(err, ErrUnauthorized):
			s.notifier.Notify(failure("Login failed", "Invalid email or password."))
		default:
			s.notifier.Notify(failure("Login failed", "Unable to sign in. Please try again."))
		}
		return user.Principal{}, fmt.Errorf("login: %w", err)
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return user.Principal{}, fmt.Errorf("save session: %w", err)
	}
	s.auth.Rearm()

	s.logger.InfoContext(ctx, "admin signed in", "user_id", sess.User.ID)
	s.notifier.Notify(success("Welcome back", fmt.Sprintf("Signed in as %s.", displayName(sess.User))))
	return sess.User, nil
}

// LoginFieldErrors returns the field errors of the last login attempt.
func (s *AuthService) LoginFieldErrors() *FieldErrors {
	return s.form.FieldErrors()
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.notifier.Notify(Toast{Kind: ToastInfo, Title: "Signed out"})
	return nil
}

// Current returns the signed-in principal. A missing or expired session is
// ErrUnauthorized; an expired one is also cleared.
func (s *AuthService) Current(ctx context.Context) (user.Principal, error) {
	sess, err := s.store.Load(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return user.Principal{}, fmt.Errorf("%w: not signed in", ErrUnauthorized)
	}
	if err != nil {
		return user.Principal{}, fmt.Errorf("load session: %w", err)
	}
	if sess.Expired(s.now()) {
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.logger.WarnContext(ctx, "clear expired session failed", "error", clearErr)
		}
		return user.Principal{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}
	return sess.User, nil
}

func displayName(p user.Principal) string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	return p.Email
}
