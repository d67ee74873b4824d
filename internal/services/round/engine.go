package round

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/mcoot/vocify/internal/dependencies/clock"
	"github.com/mcoot/vocify/internal/model"
)

// WordSource supplies root words
type WordSource interface {
	PickRoot() (model.RootWord, error)
}

// DictionaryOracle answers whether a string is a recognized word
type DictionaryOracle interface {
	IsValidWord(word string, lang language.Tag) bool
}

// ScoreStore persists the high score across sessions
type ScoreStore interface {
	GetHighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, value int) error
}

// WordFinder is implemented by dictionaries that can list the words
// formable from a root. Hints report a remaining count when available.
type WordFinder interface {
	FormableWords(root string) []string
}

// Engine runs one round at a time: it owns the round state, applies the
// word rules and keeps the high score up to date.
//
// An Engine is not safe for concurrent use; calls must be serialized.
type Engine struct {
	words      WordSource
	dictionary DictionaryOracle
	scores     ScoreStore
	clock      clock.Clock
	lang       language.Tag
	logger     *slog.Logger

	round     *model.Round
	highScore int
}

// NewEngine creates an idle Engine
func NewEngine(
	words WordSource,
	dictionary DictionaryOracle,
	scores ScoreStore,
	clock clock.Clock,
	lang language.Tag,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		words:      words,
		dictionary: dictionary,
		scores:     scores,
		clock:      clock,
		lang:       lang,
		logger:     logger,
	}
}

// StartRound begins a fresh round with a newly picked root word.
// Any previous round is discarded. On error the previous state is kept.
func (e *Engine) StartRound(ctx context.Context) (model.Round, error) {
	root, err := e.words.PickRoot()
	if err != nil {
		return model.Round{}, fmt.Errorf("start round: %w", err)
	}

	stored, err := e.scores.GetHighScore(ctx)
	if err != nil {
		return model.Round{}, fmt.Errorf("load high score: %w", err)
	}
	e.highScore = max(e.highScore, stored)

	e.round = model.NewRound(root, e.clock.Now())

	e.logger.Info("round started",
		slog.String("root", string(root)),
		slog.Int("high_score", e.highScore),
	)

	return e.round.Clone(), nil
}

// RestartRound is StartRound; it exists for callers that expose a separate restart action
func (e *Engine) RestartRound(ctx context.Context) (model.Round, error) {
	return e.StartRound(ctx)
}

// Submit checks a candidate word against the round rules, in order:
// originality, formability, recognition. The first failing rule decides the
// rejection. Rejections are returned as a *model.RejectionError alongside a
// result describing the unchanged round.
func (e *Engine) Submit(ctx context.Context, candidate string) (model.SubmitResult, error) {
	if e.round == nil {
		return model.SubmitResult{}, model.ErrNoActiveRound
	}

	word := Normalize(candidate, e.lang)
	if word == "" {
		return e.result(model.OutcomeNoOp, word), nil
	}

	root := e.round.Root

	if !IsOriginal(word, e.round.Accepted) {
		return e.reject(model.ErrDuplicateWord, word)
	}

	if !IsFormable(word, root) {
		e.round.Rejected = append(e.round.Rejected, word)
		return e.reject(model.ErrNotFormable, word)
	}

	if !IsRecognized(word, root, e.dictionary, e.lang) {
		e.round.Rejected = append(e.round.Rejected, word)
		return e.reject(model.ErrUnrecognizedWord, word)
	}

	e.round.Accepted = append([]string{word}, e.round.Accepted...)
	e.round.Score += wordScore(word)

	newHighScore := false
	if e.round.Score > e.highScore {
		e.highScore = e.round.Score
		newHighScore = true
		if err := e.scores.SetHighScore(ctx, e.highScore); err != nil {
			// The word stands; the score is retried on the next improvement
			e.logger.Error("failed to save high score",
				slog.Int("high_score", e.highScore),
				slog.String("error", err.Error()),
			)
		} else {
			e.logger.Info("new high score",
				slog.String("root", string(root)),
				slog.Int("high_score", e.highScore),
			)
		}
	}

	result := e.result(model.OutcomeAccepted, word)
	result.NewHighScore = newHighScore
	return result, nil
}

func (e *Engine) reject(kind error, word string) (model.SubmitResult, error) {
	rejection := model.NewRejection(kind, word, e.round.Root)
	return e.result(rejection.Outcome(), word), rejection
}

func (e *Engine) result(outcome model.Outcome, word string) model.SubmitResult {
	snapshot := e.round.Clone()
	return model.SubmitResult{
		Outcome:   outcome,
		Word:      word,
		Root:      snapshot.Root,
		Score:     snapshot.Score,
		Accepted:  snapshot.Accepted,
		Rejected:  snapshot.Rejected,
		HighScore: e.highScore,
	}
}

// Round returns a copy of the current round and whether one is active
func (e *Engine) Round() (model.Round, bool) {
	if e.round == nil {
		return model.Round{}, false
	}
	return e.round.Clone(), true
}

// Active reports whether a round is in progress
func (e *Engine) Active() bool {
	return e.round != nil
}

// HighScore returns the best score known to this engine
func (e *Engine) HighScore() int {
	return e.highScore
}

// Language returns the language words are checked in
func (e *Engine) Language() language.Tag {
	return e.lang
}

// Hint returns a nudge for the current round
func (e *Engine) Hint() (model.Hint, error) {
	if e.round == nil {
		return model.Hint{}, model.ErrNoActiveRound
	}

	hint := model.Hint{
		Root: e.round.Root,
		Text: model.HintText(e.round.Root),
	}

	if finder, ok := e.dictionary.(WordFinder); ok {
		for _, w := range finder.FormableWords(string(e.round.Root)) {
			if IsOriginal(w, e.round.Accepted) {
				hint.Remaining++
			}
		}
	}

	return hint, nil
}
