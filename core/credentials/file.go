package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileConfig configures the file-backed store.
type FileConfig struct {
	// Path is the location of the credential file.
	Path string `env:"CREDENTIALS_FILE" envDefault:".kibraconnect/credentials.json"`
}

// FileStore persists the session as a single JSON document on disk, the
// process-wide durable key-value store of the client. Writes go through a
// temporary file and an atomic rename, so a concurrent reader observes
// either the old or the new document, never a mix. The file is created with
// 0600 permissions.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at the given path. The parent
// directory is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewFileStoreFromConfig creates a file-backed store from configuration.
func NewFileStoreFromConfig(cfg FileConfig) *FileStore {
	return NewFileStore(cfg.Path)
}

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !session.Complete() {
		return ErrIncompleteSession
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credentials-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// Load implements Store. A missing file means no session; a file holding an
// incomplete session is treated as absent as well, so a torn state can never
// leak out as a half-authenticated identity.
func (s *FileStore) Load(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	if !session.Complete() {
		return Session{}, nil
	}
	return session, nil
}

// Clear implements Store. Clearing a store that was never written succeeds.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrClearFailed, err)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
