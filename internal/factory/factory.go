package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/mcoot/vocify/internal/config"
	"github.com/mcoot/vocify/internal/dependencies/clock"
	"github.com/mcoot/vocify/internal/dependencies/random"
	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/services/dictionary"
	"github.com/mcoot/vocify/internal/services/highscore"
	"github.com/mcoot/vocify/internal/services/round"
	"github.com/mcoot/vocify/internal/services/session"
	"github.com/mcoot/vocify/internal/services/words"
	"github.com/mcoot/vocify/internal/storage"
	"github.com/mcoot/vocify/internal/storage/memory"
	redisstorage "github.com/mcoot/vocify/internal/storage/redis"
	"github.com/mcoot/vocify/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
	StorageTypeSQLite = config.StorageSQLite
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordService       *words.Service
	DictionaryService *dictionary.Service
	HighScores        *highscore.Store
	Sessions          *session.Manager

	Language language.Tag
	Logger   *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is a word list file (optional)
	// If empty, the dictionary comes from storage or the built-in list
	DictionaryPath string
	// WordPoolPath is a root word list file (optional)
	// If empty, the pool comes from storage or the built-in list
	WordPoolPath string
	// Language of the dictionary. Zero value means English.
	Language language.Tag
	// HighScoreKey names the persisted high score (default "Highscore")
	HighScoreKey string
	// SessionTTL is how long an idle API session lives (0 disables expiry)
	SessionTTL time.Duration
	// RootSeed makes root selection deterministic when non-zero
	RootSeed uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
}

// ConfigFromServer maps the process configuration onto the factory configuration
func ConfigFromServer(cfg config.Server, logger *slog.Logger) (Config, error) {
	lang, err := cfg.Language()
	if err != nil {
		return Config{}, err
	}

	out := Config{
		DictionaryPath: cfg.DictionaryPath,
		WordPoolPath:   cfg.WordPoolPath,
		Language:       lang,
		HighScoreKey:   cfg.HighScoreKey,
		SessionTTL:     cfg.SessionTTL,
		RootSeed:       cfg.RootSeed,
		Logger:         logger,
		StorageType:    cfg.StorageType,
		SQLitePath:     cfg.SQLitePath,
	}
	if cfg.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		out.RedisConfig = &redisCfg
	}
	return out, nil
}

// New creates a new application with all dependencies wired.
// Word lists are not loaded until Load is called.
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	var rnd random.Random = random.New()
	if cfg.RootSeed != 0 {
		rnd = random.NewSeeded(cfg.RootSeed)
	}

	return newWithDependencies(store, clock.New(), rnd, cfg, logger), nil
}

func openStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlite.Open(cfg.SQLitePath)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	lang := cfg.Language
	if lang == language.Und {
		lang = language.English
	}
	key := cfg.HighScoreKey
	if key == "" {
		key = highscore.DefaultName
	}

	app := &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		WordService:       words.New(store, rnd, lang),
		DictionaryService: dictionary.New(store, lang),
		HighScores:        highscore.New(store, key),
		Language:          lang,
		Logger:            logger,
	}
	app.Sessions = session.NewManager(app.NewEngine, clk, rnd, cfg.SessionTTL, logger)
	return app
}

// NewEngine creates a round engine over the app's shared word pool,
// dictionary and high score
func (a *App) NewEngine() *round.Engine {
	return round.NewEngine(a.WordService, a.DictionaryService, a.HighScores, a.Clock, a.Language, a.Logger)
}

// Load fills the word pool and dictionary. A configured file wins, then
// whatever a previous run saved to storage, then the built-in lists.
func (a *App) Load(ctx context.Context, cfg Config) error {
	if err := loadList(ctx, a.Logger, "word pool", cfg.WordPoolPath,
		a.WordService.LoadFromFile, a.WordService.LoadFromStorage, a.WordService.LoadDefault); err != nil {
		return err
	}
	if a.WordService.Size() == 0 {
		return fmt.Errorf("load word pool: %w", model.ErrEmptyPool)
	}
	if err := loadList(ctx, a.Logger, "dictionary", cfg.DictionaryPath,
		a.DictionaryService.LoadFromFile, a.DictionaryService.LoadFromStorage, a.DictionaryService.LoadDefault); err != nil {
		return err
	}

	a.Logger.Info("word lists loaded",
		slog.Int("roots", a.WordService.Size()),
		slog.Int("dictionary_words", a.DictionaryService.WordCount()),
		slog.String("language", a.Language.String()),
	)
	return nil
}

func loadList(
	ctx context.Context,
	logger *slog.Logger,
	name string,
	path string,
	fromFile func(context.Context, string) error,
	fromStorage func(context.Context) error,
	fromDefault func() error,
) error {
	if path != "" {
		if err := fromFile(ctx, path); err != nil {
			return fmt.Errorf("load %s from %s: %w", name, path, err)
		}
		return nil
	}

	err := fromStorage(ctx)
	if err == nil {
		return nil
	}
	logger.Debug("no stored list, using built-in",
		slog.String("list", name),
		slog.String("reason", err.Error()),
	)

	if err := fromDefault(); err != nil {
		return fmt.Errorf("load built-in %s: %w", name, err)
	}
	return nil
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
