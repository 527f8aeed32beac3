// Package prefs remembers console settings between sessions: the color theme
// and the e-mail address of the last successful login.
//
// The file lives at $XDG_CONFIG_HOME/lms/prefs.toml (usually
// ~/.config/lms/prefs.toml). A missing file is not an error. An unreadable or
// malformed one yields defaults together with the error, so the session can
// start and the caller decides whether to log it.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultTheme = "Nightfox"

// Prefs are the remembered settings.
type Prefs struct {
	Theme     string `toml:"theme"`
	LastEmail string `toml:"last_email,omitempty"`
}

func defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.LastEmail = strings.TrimSpace(p.LastEmail)
	return p
}

// Store reads and writes one prefs file.
type Store struct {
	path string
}

// Open returns a store for path. An empty path selects the per-user default.
func Open(path string) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: resolved}, nil
}

// Path is the resolved file location.
func (s *Store) Path() string { return s.path }

// Load returns the stored prefs, or defaults when the file does not exist.
func (s *Store) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return defaults(), nil
	}
	if err != nil {
		return defaults(), fmt.Errorf("read prefs: %w", err)
	}

	p := defaults()
	if err := toml.Unmarshal(data, &p); err != nil {
		return defaults(), fmt.Errorf("parse prefs %s: %w", s.path, err)
	}
	return p.normalized(), nil
}

// Save replaces the file with p. The file is readable by its owner only since
// it holds an e-mail address.
func (s *Store) Save(p Prefs) error {
	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	// Write beside the target and rename so a crash never leaves half a file.
	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// RememberLogin records email as the last login. The file is rewritten only
// when the address changes; the theme already on disk is kept.
func (s *Store) RememberLogin(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	// A corrupt file is replaced rather than blocking the update.
	current, _ := s.Load()
	if current.LastEmail == email {
		return nil
	}
	current.LastEmail = email
	return s.Save(current)
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("locate config dir: %w", err)
		}
		return filepath.Join(dir, "lms", "prefs.toml"), nil
	}
	if rest, ok := strings.CutPrefix(trimmed, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, rest)
	}
	return filepath.Abs(trimmed)
}
