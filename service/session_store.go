package service

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/finsight-app/finsight/domain"
)

// FileSessionStore persists the session as a JSON file in the user's
// config directory, readable only by the owner.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore creates a session store at the given path. An empty
// path falls back to the default location under the user config dir.
func NewFileSessionStore(path string) *FileSessionStore {
	if path == "" {
		path = DefaultSessionPath()
	}
	return &FileSessionStore{path: path}
}

// DefaultSessionPath returns the standard session file location
func DefaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "finsight", "session.json")
}

// Save writes the session atomically: a temp file in the same directory is
// renamed over the target so a crash never leaves a half-written session.
func (s *FileSessionStore) Save(session *domain.Session) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return domain.NewConfigError("failed to create session directory", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return domain.NewConfigError("failed to encode session", err)
	}

	tmp, err := os.CreateTemp(dir, "session-*.json")
	if err != nil {
		return domain.NewConfigError("failed to create session file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return domain.NewConfigError("failed to write session file", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return domain.NewConfigError("failed to set session file permissions", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return domain.NewConfigError("failed to close session file", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return domain.NewConfigError("failed to persist session file", err)
	}
	return nil
}

// Load reads the persisted session. A missing file means no session and is
// not an error.
func (s *FileSessionStore) Load() (*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.NewConfigError("failed to read session file", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, domain.NewConfigError("failed to decode session file", err)
	}
	if session.Token == "" {
		return nil, nil
	}
	return &session, nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *FileSessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return domain.NewConfigError("failed to remove session file", err)
	}
	return nil
}
