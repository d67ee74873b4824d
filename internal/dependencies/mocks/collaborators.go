package mocks

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// MockDictionary is an in-memory word set standing in for a dictionary
type MockDictionary struct {
	Words map[string]struct{}
	// Lookups records every word checked
	Lookups []string
}

// NewMockDictionary creates a MockDictionary containing the given words
func NewMockDictionary(words ...string) *MockDictionary {
	d := &MockDictionary{Words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.Words[strings.ToLower(w)] = struct{}{}
	}
	return d
}

// IsValidWord reports whether the word is in the set; the language is ignored
func (d *MockDictionary) IsValidWord(word string, _ language.Tag) bool {
	d.Lookups = append(d.Lookups, word)
	_, ok := d.Words[strings.ToLower(word)]
	return ok
}

// MockScoreStore is an in-memory integer cell
type MockScoreStore struct {
	Value int

	// GetErr and SetErr are returned by the respective calls when set
	GetErr error
	SetErr error

	GetCalls int
	// SetCalls records every value written
	SetCalls []int
}

// NewMockScoreStore creates a MockScoreStore holding the given value
func NewMockScoreStore(value int) *MockScoreStore {
	return &MockScoreStore{Value: value}
}

// GetHighScore returns the stored value
func (s *MockScoreStore) GetHighScore(_ context.Context) (int, error) {
	s.GetCalls++
	if s.GetErr != nil {
		return 0, s.GetErr
	}
	return s.Value, nil
}

// SetHighScore stores the value unless SetErr is set
func (s *MockScoreStore) SetHighScore(_ context.Context, value int) error {
	s.SetCalls = append(s.SetCalls, value)
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Value = value
	return nil
}
