package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Server is the configuration of the vocify server process
type Server struct {
	Host string `env:"VOCIFY_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"VOCIFY_PORT" envDefault:"8080"`

	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/vocify.db"`

	// Empty paths fall back to storage, then to the embedded lists
	DictionaryPath string `env:"DICTIONARY_PATH"`
	WordPoolPath   string `env:"WORD_POOL_PATH"`

	DictionaryLanguage string `env:"DICTIONARY_LANGUAGE" envDefault:"en"`
	HighScoreKey       string `env:"HIGH_SCORE_KEY" envDefault:"Highscore"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// RootSeed makes root-word selection deterministic when non-zero
	RootSeed uint64 `env:"ROOT_SEED" envDefault:"0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if one exists, then parses the environment
func Load(files ...string) (Server, error) {
	// A missing .env file is fine; the environment alone is enough
	_ = godotenv.Load(files...)

	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express
func (c Server) Validate() error {
	switch c.StorageType {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be memory, redis or sqlite", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid VOCIFY_PORT %d", c.Port)
	}
	if c.SessionTTL < 0 {
		return errors.New("SESSION_TTL must not be negative")
	}
	if strings.TrimSpace(c.HighScoreKey) == "" {
		return errors.New("HIGH_SCORE_KEY must not be empty")
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Addr is the listen address
func (c Server) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Language parses DICTIONARY_LANGUAGE as a BCP 47 tag
func (c Server) Language() (language.Tag, error) {
	tag, err := language.Parse(c.DictionaryLanguage)
	if err != nil {
		return language.Und, fmt.Errorf("invalid DICTIONARY_LANGUAGE %q: %w", c.DictionaryLanguage, err)
	}
	return tag, nil
}

// Level parses LOG_LEVEL
func (c Server) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
