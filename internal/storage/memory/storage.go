package memory

import (
	"context"
	"sync"

	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	highScores      map[string]int
	dictionaryWords []string
	wordPool        []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		highScores: make(map[string]int),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Close is a no-op
func (s *Storage) Close() error {
	return nil
}

// High score operations

func (s *Storage) GetHighScore(ctx context.Context, name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highScores[name], nil
}

func (s *Storage) SetHighScore(ctx context.Context, name string, value int) error {
	if value < 0 {
		return model.ErrNegativeScore
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if value > s.highScores[name] {
		s.highScores[name] = value
	}
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	return copyWords(s.dictionaryWords), nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = copyWords(words)
	return nil
}

// Word pool operations

func (s *Storage) GetWordPool(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordPool == nil {
		return nil, model.ErrWordPoolNotLoaded
	}
	return copyWords(s.wordPool), nil
}

func (s *Storage) SaveWordPool(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordPool = copyWords(words)
	return nil
}

func copyWords(words []string) []string {
	result := make([]string, len(words))
	copy(result, words)
	return result
}
