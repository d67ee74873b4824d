package model

import (
	"fmt"
	"time"
)

// RootWord is the word a round's answers are spelled from
type RootWord string

// Round holds the state of one play session, from root-word selection
// to the next restart
type Round struct {
	Root RootWord `json:"root"`
	// Accepted is most-recent-first
	Accepted []string `json:"accepted"`
	// Rejected is oldest-first and may contain repeats
	Rejected  []string  `json:"rejected"`
	Score     int       `json:"score"`
	StartedAt time.Time `json:"started_at"`
}

// NewRound creates an empty round for the given root
func NewRound(root RootWord, startedAt time.Time) *Round {
	return &Round{
		Root:      root,
		Accepted:  []string{},
		Rejected:  []string{},
		StartedAt: startedAt,
	}
}

// Clone returns a deep copy, safe to hand to callers
func (r *Round) Clone() Round {
	accepted := make([]string, len(r.Accepted))
	copy(accepted, r.Accepted)
	rejected := make([]string, len(r.Rejected))
	copy(rejected, r.Rejected)
	return Round{
		Root:      r.Root,
		Accepted:  accepted,
		Rejected:  rejected,
		Score:     r.Score,
		StartedAt: r.StartedAt,
	}
}

// Hint is a nudge for the current round
type Hint struct {
	Root RootWord `json:"root"`
	Text string   `json:"text"`
	// Remaining counts dictionary words formable from the root that
	// have not been accepted yet
	Remaining int `json:"remaining"`
}

// HintText returns the hint sentence for a root word
func HintText(root RootWord) string {
	return fmt.Sprintf("Try to think of the words that are related to %s!", root)
}

// Instructions describes how to play
const Instructions = `1. The game will show a root word.
2. You need to enter words that can be formed from the root word.
3. Try to form as many words as possible.
4. Your score is based on the length of each word you enter.
5. Use hints if needed!`
