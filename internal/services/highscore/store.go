package highscore

import (
	"context"

	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/storage"
)

// DefaultName is the key the high score is stored under
const DefaultName = "Highscore"

// Store persists a single named high score
type Store struct {
	storage storage.Storage
	name    string
}

// New creates a Store; an empty name uses DefaultName
func New(storage storage.Storage, name string) *Store {
	if name == "" {
		name = DefaultName
	}
	return &Store{storage: storage, name: name}
}

// Name returns the key the score is stored under
func (s *Store) Name() string {
	return s.name
}

// GetHighScore returns the stored high score, or 0 if never set
func (s *Store) GetHighScore(ctx context.Context) (int, error) {
	return s.storage.GetHighScore(ctx, s.name)
}

// SetHighScore raises the stored high score; a lower value is ignored
func (s *Store) SetHighScore(ctx context.Context, value int) error {
	if value < 0 {
		return model.ErrNegativeScore
	}
	return s.storage.SetHighScore(ctx, s.name, value)
}
