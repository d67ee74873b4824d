package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration. Flags override the environment.
type Config struct {
	ServerURL   string `env:"VOCIFY_SERVER"`
	SessionID   string
	SessionFile string `env:"VOCIFY_SESSION_FILE"`
	Output      string
	Verbose     bool

	// DBPath is the local database used by play
	DBPath string `env:"VOCIFY_DB"`
	// Ephemeral play keeps the high score in memory only
	Ephemeral bool
}

// DefaultConfig returns a Config with default values, overridden by
// any VOCIFY_* environment variables that are set
func DefaultConfig() *Config {
	c := &Config{
		ServerURL:   "http://localhost:8080",
		SessionFile: defaultPath("session"),
		Output:      "text",
		DBPath:      defaultPath("vocify.db"),
	}
	// Only string fields are tagged, so parsing cannot fail
	_ = env.Parse(c)
	return c
}

// LoadSession loads the session id from file if not already set
func (c *Config) LoadSession() error {
	if c.SessionID != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session yet is fine
		}
		return err
	}

	c.SessionID = strings.TrimSpace(string(data))
	return nil
}

// SaveSession saves the session id to the session file
func (c *Config) SaveSession(id string) error {
	c.SessionID = id

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(id), 0600)
}

// ClearSession forgets the current session
func (c *Config) ClearSession() error {
	c.SessionID = ""
	if err := os.Remove(c.SessionFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".vocify", name)
	}
	return filepath.Join(home, ".vocify", name)
}
