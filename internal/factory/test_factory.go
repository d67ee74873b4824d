package factory

import (
	"time"

	"github.com/mcoot/vocify/internal/dependencies/mocks"
	"github.com/mcoot/vocify/internal/storage/memory"
	"github.com/mcoot/vocify/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, Config{SessionTTL: time.Hour}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWords loads a one-root pool and a small dictionary around it
func (t *TestApp) LoadTestWords() error {
	if err := t.WordService.LoadWords([]string{"garden", "apple"}); err != nil {
		return err
	}
	return t.DictionaryService.LoadWords([]string{
		// from garden
		"dear", "read", "dare", "den", "end", "red", "ran", "and", "age", "rag",
		"gear", "rage", "grade", "range", "anger", "danger", "gander", "grand",
		// from apple
		"pale", "leap", "peal", "plea", "ape", "lap", "pal", "pep", "app", "apple",
		// from neither
		"zebra", "apples", "appall",
	})
}
