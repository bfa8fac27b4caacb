package sessionstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/starpick-admin/internal/domain/session"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// FileStore keeps the session as JSON in a file readable only by the owner.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(_ context.Context) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return session.Session{}, session.ErrNoSession
	}
	if err != nil {
		return session.Session{}, crerr.Wrapf(err, "read session file %s", s.path)
	}

	var out session.Session
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return session.Session{}, crerr.Wrapf(err, "decode session file %s", s.path)
	}
	if out.Token == "" {
		return session.Session{}, session.ErrNoSession
	}
	return out, nil
}

// Save writes through a temp file and rename so a crash never leaves a
// truncated session behind.
func (s *FileStore) Save(_ context.Context, value session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := sonic.Marshal(value)
	if err != nil {
		return crerr.Wrap(err, "encode session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return crerr.Wrapf(err, "create session dir for %s", s.path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return crerr.Wrap(err, "create temp session file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return crerr.Wrap(err, "chmod temp session file")
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return crerr.Wrap(err, "write temp session file")
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrap(err, "close temp session file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return crerr.Wrapf(err, "replace session file %s", s.path)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return crerr.Wrapf(err, "remove session file %s", s.path)
	}
	return nil
}
