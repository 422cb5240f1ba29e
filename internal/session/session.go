package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/keyring"
	"github.com/moodlogapp/moodlog/internal/logger"
)

// Store holds the bearer token for the current user. It is constructed
// once at startup and passed explicitly to everything that issues
// requests; there is no package-level singleton.
//
// The token lives in the OS keyring when one is available, otherwise in a
// plaintext file under the config dir. Reads vastly outnumber writes
// (every outgoing request reads, only login/logout write), so access is
// guarded by an RWMutex.
type Store struct {
	mu        sync.RWMutex
	token     string
	configDir string
	useFile   bool
}

// New creates a session store rooted at configDir and loads any
// previously persisted token.
func New(configDir string) *Store {
	s := &Store{configDir: configDir}
	s.load()
	return s
}

func (s *Store) load() {
	token, err := keyring.GetToken()
	switch {
	case err == nil:
		s.token = token
		return
	case errors.Is(err, keyring.ErrKeyringUnavailable):
		s.useFile = true
	case errors.Is(err, keyring.ErrNotFound):
		return
	}

	data, err := os.ReadFile(s.tokenFile())
	if err != nil {
		return
	}
	s.token = strings.TrimSpace(string(data))
}

func (s *Store) tokenFile() string {
	return filepath.Join(s.configDir, constants.TokenFileName)
}

// Token returns the current bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Login persists the token and marks the session authenticated.
func (s *Store) Login(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.useFile {
		if err := keyring.SetToken(token); err != nil {
			if !errors.Is(err, keyring.ErrKeyringUnavailable) {
				logger.Warn("Keyring write failed, falling back to token file", "error", err)
			}
			s.useFile = true
		}
	}
	if s.useFile {
		if err := os.MkdirAll(s.configDir, 0700); err != nil {
			return err
		}
		if err := os.WriteFile(s.tokenFile(), []byte(token), 0600); err != nil {
			return err
		}
	}

	s.token = token
	return nil
}

// Logout clears the persisted token. It is idempotent: logging out of an
// already logged-out session is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return
	}
	s.token = ""

	if err := keyring.DeleteToken(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring delete failed", "error", err)
	}
	if err := os.Remove(s.tokenFile()); err != nil && !os.IsNotExist(err) {
		logger.Debug("Token file delete failed", "error", err)
	}
}
