package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/mcoot/vocify/internal/dependencies/mocks"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "dear", Normalize("  Dear ", language.English))
	assert.Equal(t, "", Normalize(" \t ", language.English))
	assert.Equal(t, "ıi", Normalize("Iİ", language.Turkish))
}

func TestIsOriginal(t *testing.T) {
	assert.True(t, IsOriginal("dear", nil))
	assert.False(t, IsOriginal("dear", []string{"read", "dear"}))
}

func TestIsFormable(t *testing.T) {
	assert.True(t, IsFormable("pale", "apple"))
	assert.False(t, IsFormable("apples", "apple"))
	assert.False(t, IsFormable("appall", "apple"))
	assert.True(t, IsFormable("dear", "garden"))
	assert.False(t, IsFormable("zebra", "garden"))
}

func TestIsRecognized(t *testing.T) {
	dict := mocks.NewMockDictionary("dear", "garden")

	assert.True(t, IsRecognized("dear", "garden", dict, language.English))
	assert.False(t, IsRecognized("garden", "garden", dict, language.English))
	assert.False(t, IsRecognized("", "garden", dict, language.English))
	assert.False(t, IsRecognized("dnger", "garden", dict, language.English))
}
