package model

import "errors"

// Common errors used across the application
var (
	// Word pool errors
	ErrEmptyPool         = errors.New("word pool is empty")
	ErrWordPoolNotLoaded = errors.New("word pool not loaded")

	// Round errors
	ErrNoActiveRound = errors.New("no active round")

	// Rejections. These never corrupt round state; the round continues.
	ErrDuplicateWord    = errors.New("word used already")
	ErrNotFormable      = errors.New("word not possible")
	ErrUnrecognizedWord = errors.New("word not recognized")

	// Score errors
	ErrNegativeScore = errors.New("score must not be negative")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
