package response

import (
	"time"

	"github.com/mcoot/vocify/internal/model"
)

// Round represents a round in API responses
type Round struct {
	Root      string    `json:"root"`
	Accepted  []string  `json:"accepted"`
	Rejected  []string  `json:"rejected"`
	Score     int       `json:"score"`
	HighScore int       `json:"high_score"`
	StartedAt time.Time `json:"started_at"`
}

// RoundFromModel converts a model.Round to a response Round
func RoundFromModel(r model.Round, highScore int) Round {
	return Round{
		Root:      string(r.Root),
		Accepted:  nonNil(r.Accepted),
		Rejected:  nonNil(r.Rejected),
		Score:     r.Score,
		HighScore: highScore,
		StartedAt: r.StartedAt,
	}
}

// SessionResponse is returned when a session is created or fetched
type SessionResponse struct {
	SessionID  string    `json:"session_id"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	Round      Round     `json:"round"`
}

// SessionResponseFromModel combines session metadata with its round
func SessionResponseFromModel(info model.SessionInfo, r model.Round, highScore int) SessionResponse {
	return SessionResponse{
		SessionID:  string(info.ID),
		CreatedAt:  info.CreatedAt,
		LastActive: info.LastActive,
		Round:      RoundFromModel(r, highScore),
	}
}

// SubmitResponse is returned for an accepted word or an empty submission
type SubmitResponse struct {
	Outcome      string   `json:"outcome"`
	Word         string   `json:"word"`
	Root         string   `json:"root"`
	Score        int      `json:"score"`
	Accepted     []string `json:"accepted"`
	Rejected     []string `json:"rejected"`
	HighScore    int      `json:"high_score"`
	NewHighScore bool     `json:"new_high_score"`
}

// SubmitResponseFromModel converts a model.SubmitResult
func SubmitResponseFromModel(r model.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Outcome:      string(r.Outcome),
		Word:         r.Word,
		Root:         string(r.Root),
		Score:        r.Score,
		Accepted:     nonNil(r.Accepted),
		Rejected:     nonNil(r.Rejected),
		HighScore:    r.HighScore,
		NewHighScore: r.NewHighScore,
	}
}

// Hint represents a hint in API responses
type Hint struct {
	Root      string `json:"root"`
	Text      string `json:"text"`
	Remaining int    `json:"remaining"`
}

// HintFromModel converts a model.Hint
func HintFromModel(h model.Hint) Hint {
	return Hint{
		Root:      string(h.Root),
		Text:      h.Text,
		Remaining: h.Remaining,
	}
}

// HighScore is the response for the high score endpoint
type HighScore struct {
	HighScore int `json:"high_score"`
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

func nonNil(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
