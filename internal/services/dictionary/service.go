package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/storage"
)

//go:embed data/en.txt
var defaultEnglish string

// Service answers whether a string is a recognized word in its language
type Service struct {
	storage storage.Storage
	lang    language.Tag

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService for the given language
func New(storage storage.Storage, lang language.Tag) *Service {
	return &Service{
		storage: storage,
		lang:    lang,
		words:   make(map[string]struct{}),
	}
}

// fold lower-cases with the case rules of the dictionary's language.
// A Caser keeps state, so each call gets its own.
func (s *Service) fold(word string) string {
	return cases.Lower(s.lang).String(word)
}

// Language returns the language of the loaded words
func (s *Service) Language() language.Tag {
	return s.lang
}

// LoadDefault loads the built-in word list. Only English is bundled.
func (s *Service) LoadDefault() error {
	if !sameLanguage(s.lang, language.English) {
		return fmt.Errorf("no built-in dictionary for %s", s.lang)
	}
	words, err := readWords(strings.NewReader(defaultEnglish))
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
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

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		if w := s.fold(strings.TrimSpace(word)); w != "" {
			set[w] = struct{}{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = set
	s.loaded = true
	return nil
}

// IsValidWord checks if a word exists in the dictionary for the given language.
// Words in a different language than the loaded one are never valid.
func (s *Service) IsValidWord(word string, lang language.Tag) bool {
	if word == "" || !sameLanguage(s.lang, lang) {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[s.fold(word)]
	return ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// FormableWords returns every dictionary word, other than root itself,
// that can be spelled from root's letters. Results are sorted.
func (s *Service) FormableWords(root string) []string {
	root = s.fold(root)
	counts := model.CountLetters(root)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil
	}

	results := lo.Filter(lo.Keys(s.words), func(w string, _ int) bool {
		return w != root && counts.CanSpell(w)
	})
	sort.Strings(results)
	return results
}

// sameLanguage compares base languages, so "en-GB" matches "en".
// An undetermined tag matches anything.
func sameLanguage(a, b language.Tag) bool {
	if a == language.Und || b == language.Und {
		return true
	}
	baseA, _ := a.Base()
	baseB, _ := b.Base()
	return baseA == baseB
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
