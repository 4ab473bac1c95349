package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	sessionFileName = "session.json"
	appDirName      = "storefront"
)

// FileStore persists the session to ~/.local/state/storefront/session.json
// (respecting XDG_STATE_HOME). Reads are served from memory; every Set and
// Clear is written through to disk.
type FileStore struct {
	dir string

	mu      sync.RWMutex
	current Session
}

// NewFileStore opens the store in dir, loading any session already on disk.
// Pass an empty string to use the default XDG state path. A file that cannot
// be parsed, or that holds a token without a user (or the reverse), is
// removed and the store starts logged out.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = defaultStateDir()
	}
	s := &FileStore{dir: dir}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the full path to the session file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, sessionFileName)
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || !sess.Valid() {
		slog.Warn("discarding unreadable session file", "path", s.Path(), "error", err)
		if rmErr := os.Remove(s.Path()); rmErr != nil && !os.IsNotExist(rmErr) {
			return fmt.Errorf("removing session: %w", rmErr)
		}
		return nil
	}
	s.current = sess
	return nil
}

func (s *FileStore) Get() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.current.Valid() {
		return Session{}, false
	}
	return clone(s.current), true
}

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Set writes the session using an atomic temp-file-then-rename pattern.
func (s *FileStore) Set(sess Session) error {
	if !sess.Valid() {
		return ErrIncompleteSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(sess); err != nil {
		return err
	}
	s.current = clone(sess)
	return nil
}

// Clear drops the in-memory session and deletes the file. The in-memory copy
// is cleared even if the file cannot be removed.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Session{}
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

func (s *FileStore) write(sess Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		return fmt.Errorf("renaming session file: %w", err)
	}
	committed = true
	return nil
}

// defaultStateDir returns ~/.local/state/storefront, respecting
// XDG_STATE_HOME if set.
func defaultStateDir() string {
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".local", "state", appDirName)
}
