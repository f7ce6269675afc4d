package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/taskdeck/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrNoSession is returned when no one is logged in
var ErrNoSession = errors.New("not logged in (run 'taskdeck login')")

// Session is the persisted result of a login
type Session struct {
	APIURL string      `yaml:"api_url"`
	Token  string      `yaml:"token"`
	User   models.User `yaml:"user"`
}

// SessionStore reads and writes the session file
type SessionStore struct {
	path string
}

// NewSessionStore returns a store backed by <dir>/session.yaml
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, "session.yaml")}
}

// Path returns the session file location
func (s *SessionStore) Path() string {
	return s.path
}

// Load returns the saved session, or ErrNoSession
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if session.Token == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

// Save writes the session with owner-only permissions
func (s *SessionStore) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// UpdateUser replaces the cached user of an existing session
func (s *SessionStore) UpdateUser(user models.User) error {
	session, err := s.Load()
	if err != nil {
		return err
	}
	session.User = user
	return s.Save(session)
}

// Clear removes the session file. Clearing a missing session is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
