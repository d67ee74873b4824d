package round

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/vocify/internal/model"
)

// Normalize trims surrounding whitespace and lower-cases the candidate
// using the case rules of lang
func Normalize(candidate string, lang language.Tag) string {
	return cases.Lower(lang).String(strings.TrimSpace(candidate))
}

// IsOriginal reports whether word has not been accepted yet
func IsOriginal(word string, accepted []string) bool {
	return !lo.Contains(accepted, word)
}

// IsFormable reports whether word can be spelled from the root's letters,
// using each letter of the root at most as often as it appears there
func IsFormable(word string, root model.RootWord) bool {
	return model.CountLetters(string(root)).CanSpell(word)
}

// IsRecognized reports whether word is a real word other than the root itself
func IsRecognized(word string, root model.RootWord, dictionary DictionaryOracle, lang language.Tag) bool {
	if utf8.RuneCountInString(word) < 1 || word == string(root) {
		return false
	}
	return dictionary.IsValidWord(word, lang)
}

// wordScore is the number of characters in word
func wordScore(word string) int {
	return utf8.RuneCountInString(word)
}
