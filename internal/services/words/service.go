package words

import (
	"bufio"
	"context"
	_ "embed"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/vocify/internal/dependencies/random"
	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/storage"
)

//go:embed data/roots.txt
var defaultRoots string

// Service supplies root words for rounds
type Service struct {
	storage storage.Storage
	random  random.Random
	lang    language.Tag

	mu     sync.RWMutex
	pool   []string
	loaded bool
}

// New creates a new word source. Roots are lower-cased with the case
// rules of lang, matching how submitted words are normalized.
func New(storage storage.Storage, random random.Random, lang language.Tag) *Service {
	return &Service{
		storage: storage,
		random:  random,
		lang:    lang,
	}
}

// PickRoot selects a root word uniformly at random from the pool
func (s *Service) PickRoot() (model.RootWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.pool) == 0 {
		return "", model.ErrEmptyPool
	}
	return model.RootWord(s.pool[s.random.Intn(len(s.pool))]), nil
}

// LoadDefault loads the built-in root word list
func (s *Service) LoadDefault() error {
	words, err := readWords(strings.NewReader(defaultRoots))
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromStorage loads the pool saved by a previous LoadFromFile
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordPool(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads root words from a file (one word per line) and saves them to storage.
// A file with no words is rejected before anything is saved.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	words, err := readWords(file)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return model.ErrEmptyPool
	}

	if err := s.storage.SaveWordPool(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

// loadWords normalizes the words and swaps the whole pool in at once,
// so a concurrent PickRoot sees either the old pool or the new one
func (s *Service) loadWords(words []string) error {
	lower := cases.Lower(s.lang)
	pool := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = lower.String(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		pool = append(pool, w)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool = pool
	s.loaded = true
	return nil
}

// Words returns a copy of the pool
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.pool))
	copy(result, s.pool)
	return result
}

// Size returns the number of root words
func (s *Service) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pool)
}

// IsLoaded returns whether a pool has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}
