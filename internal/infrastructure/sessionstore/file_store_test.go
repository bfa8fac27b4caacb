package sessionstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/starpick-admin/internal/domain/session"
	"github.com/riskibarqy/starpick-admin/internal/domain/user"
)

func TestFileStore_RoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession before save, got %v", err)
	}

	saved := session.Session{
		Token:   "token-abc",
		User:    user.Principal{ID: 9, Name: "Staff", Email: "staff@starpick.test"},
		SavedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat session file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("unexpected session file mode %o", perm)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != saved.Token || loaded.User.Email != saved.User.Email || !loaded.SavedAt.Equal(saved.SavedAt) {
		t.Fatalf("unexpected session: %+v", loaded)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clearing twice must be harmless: %v", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := NewFileStore(path).Load(context.Background())
	if err == nil || errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
