package handler

import (
	"context"
	"net/http"

	"github.com/mcoot/vocify/internal/api/response"
)

// HighScoreReader reads the persisted high score
type HighScoreReader interface {
	GetHighScore(ctx context.Context) (int, error)
}

// HighScoreHandler serves the all-time high score
type HighScoreHandler struct {
	scores HighScoreReader
}

// NewHighScoreHandler creates a new high score handler
func NewHighScoreHandler(scores HighScoreReader) *HighScoreHandler {
	return &HighScoreHandler{scores: scores}
}

// Get handles GET /api/v1/highscore
func (h *HighScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	value, err := h.scores.GetHighScore(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HighScore{HighScore: value})
}
