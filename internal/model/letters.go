package model

// LetterCounts is the multiset of characters in a word
type LetterCounts map[rune]int

// CountLetters builds the character multiset of word
func CountLetters(word string) LetterCounts {
	counts := make(LetterCounts, len(word))
	for _, r := range word {
		counts[r]++
	}
	return counts
}

// CanSpell reports whether every character of word can be matched to a
// distinct instance in the multiset. The receiver is not modified.
func (c LetterCounts) CanSpell(word string) bool {
	used := make(map[rune]int, len(word))
	for _, r := range word {
		used[r]++
		if used[r] > c[r] {
			return false
		}
	}
	return true
}
