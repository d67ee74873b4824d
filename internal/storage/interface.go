package storage

import (
	"context"
)

// Storage defines the interface for data persistence
type Storage interface {
	// High score operations. A missing score reads as 0. SetHighScore
	// only ever raises the stored value.
	GetHighScore(ctx context.Context, name string) (int, error)
	SetHighScore(ctx context.Context, name string, value int) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error

	// Word pool operations. Order is preserved.
	GetWordPool(ctx context.Context) ([]string, error)
	SaveWordPool(ctx context.Context, words []string) error

	Close() error
}
