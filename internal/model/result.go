package model

import (
	"errors"
	"fmt"
)

// Outcome is the kind of result a submission produced
type Outcome string

const (
	OutcomeAccepted     Outcome = "accepted"
	OutcomeDuplicate    Outcome = "duplicate"
	OutcomeNotFormable  Outcome = "not_formable"
	OutcomeUnrecognized Outcome = "unrecognized"
	OutcomeNoOp         Outcome = "noop"
)

// SubmitResult reports what happened to a submitted word
type SubmitResult struct {
	Outcome      Outcome  `json:"outcome"`
	Word         string   `json:"word"`
	Root         RootWord `json:"root"`
	Score        int      `json:"score"`
	Accepted     []string `json:"accepted"`
	Rejected     []string `json:"rejected"`
	HighScore    int      `json:"high_score"`
	NewHighScore bool     `json:"new_high_score"`
}

// RejectionError is returned when a submitted word breaks one of the round rules
type RejectionError struct {
	// Kind is one of ErrDuplicateWord, ErrNotFormable or ErrUnrecognizedWord
	Kind error
	Word string
	Root RootWord
}

// NewRejection creates a RejectionError of the given kind
func NewRejection(kind error, word string, root RootWord) *RejectionError {
	return &RejectionError{Kind: kind, Word: word, Root: root}
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %q (root %q)", e.Kind, e.Word, e.Root)
}

func (e *RejectionError) Unwrap() error {
	return e.Kind
}

// Title is a short heading for the rejection
func (e *RejectionError) Title() string {
	switch {
	case errors.Is(e.Kind, ErrDuplicateWord):
		return "Word used already"
	case errors.Is(e.Kind, ErrNotFormable):
		return "Word not possible"
	case errors.Is(e.Kind, ErrUnrecognizedWord):
		return "Word not recognized"
	default:
		return "Word rejected"
	}
}

// Message explains the rejection to the player
func (e *RejectionError) Message() string {
	switch {
	case errors.Is(e.Kind, ErrDuplicateWord):
		return "Be more original!"
	case errors.Is(e.Kind, ErrNotFormable):
		return fmt.Sprintf("You can't spell that word from '%s'!", e.Root)
	case errors.Is(e.Kind, ErrUnrecognizedWord):
		return "You can't just make them up, you know!"
	default:
		return e.Kind.Error()
	}
}

// Outcome maps the rejection kind to its submit outcome
func (e *RejectionError) Outcome() Outcome {
	switch {
	case errors.Is(e.Kind, ErrDuplicateWord):
		return OutcomeDuplicate
	case errors.Is(e.Kind, ErrNotFormable):
		return OutcomeNotFormable
	default:
		return OutcomeUnrecognized
	}
}
