// Package sqlite provides a SQLite-backed storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/storage"
)

const (
	listDictionary = "dictionary"
	listWordPool   = "word_pool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS high_scores (
		name  TEXT PRIMARY KEY,
		value INTEGER NOT NULL CHECK (value >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS dictionary_words (
		word TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS word_pool (
		position INTEGER PRIMARY KEY,
		word     TEXT NOT NULL
	)`,
	// Marks which word lists have been saved, so an empty list differs from a missing one
	`CREATE TABLE IF NOT EXISTS word_lists (
		name     TEXT PRIMARY KEY,
		saved_at INTEGER NOT NULL
	)`,
}

// Storage persists game data in SQLite
type Storage struct {
	db *sql.DB
}

// Open opens (and creates if missing) a SQLite database and applies the schema
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer at a time keeps SQLite from returning SQLITE_BUSY under load
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Storage{db: db}, nil
}

// Close closes the SQLite handle
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ storage.Storage = (*Storage)(nil)

// High score operations

func (s *Storage) GetHighScore(ctx context.Context, name string) (int, error) {
	var value int
	err := s.db.QueryRowContext(ctx, `SELECT value FROM high_scores WHERE name = ?`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get high score: %w", err)
	}
	return value, nil
}

func (s *Storage) SetHighScore(ctx context.Context, name string, value int) error {
	if value < 0 {
		return model.ErrNegativeScore
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO high_scores (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = MAX(value, excluded.value)`,
		name, value,
	)
	if err != nil {
		return fmt.Errorf("set high score: %w", err)
	}
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	saved, err := s.listSaved(ctx, listDictionary)
	if err != nil {
		return nil, err
	}
	if !saved {
		return nil, model.ErrDictionaryNotLoaded
	}
	return s.queryWords(ctx, `SELECT word FROM dictionary_words ORDER BY word`)
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	return s.replaceList(ctx, listDictionary, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM dictionary_words`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary_words (word) VALUES (?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, w := range words {
			if _, err := stmt.ExecContext(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Word pool operations

func (s *Storage) GetWordPool(ctx context.Context) ([]string, error) {
	saved, err := s.listSaved(ctx, listWordPool)
	if err != nil {
		return nil, err
	}
	if !saved {
		return nil, model.ErrWordPoolNotLoaded
	}
	return s.queryWords(ctx, `SELECT word FROM word_pool ORDER BY position`)
}

func (s *Storage) SaveWordPool(ctx context.Context, words []string) error {
	return s.replaceList(ctx, listWordPool, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM word_pool`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO word_pool (position, word) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, w := range words {
			if _, err := stmt.ExecContext(ctx, i, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Storage) listSaved(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word_lists WHERE name = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", name, err)
	}
	return count > 0, nil
}

func (s *Storage) queryWords(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// replaceList runs fill in a transaction and marks the list as saved
func (s *Storage) replaceList(ctx context.Context, name string, fill func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fill(tx); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO word_lists (name, saved_at) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET saved_at = excluded.saved_at`,
		name, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("mark %s: %w", name, err)
	}
	return tx.Commit()
}
