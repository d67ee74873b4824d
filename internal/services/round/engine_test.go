package round

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/mcoot/vocify/internal/dependencies/mocks"
	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/services/dictionary"
	"github.com/mcoot/vocify/internal/services/words"
	"github.com/mcoot/vocify/internal/storage/memory"
	"github.com/mcoot/vocify/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	random     *mocks.MockRandom
	clock      *mocks.MockClock
	words      *words.Service
	dictionary *mocks.MockDictionary
	scores     *mocks.MockScoreStore
	engine     *Engine
	ctx        context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.words = words.New(memory.New(), s.random, language.English)
	_ = s.words.LoadWords([]string{"garden", "apple", "silent"})
	s.dictionary = mocks.NewMockDictionary(
		"dear", "read", "dare", "danger", "den", "end", "red", "rage", "grand",
		"garden", "zebra", "pale", "apple", "leap",
	)
	s.scores = mocks.NewMockScoreStore(0)
	s.engine = NewEngine(s.words, s.dictionary, s.scores, s.clock, language.English, testutil.NopLogger())
	s.ctx = context.Background()
}

// startWith starts a round on the pool word at index
func (s *EngineSuite) startWith(index int) model.Round {
	s.random.QueueIntn(index)
	round, err := s.engine.StartRound(s.ctx)
	s.Require().NoError(err)
	return round
}

func (s *EngineSuite) submit(word string) model.SubmitResult {
	result, err := s.engine.Submit(s.ctx, word)
	s.Require().NoError(err)
	return result
}

func (s *EngineSuite) requireRejection(word string, kind error) model.SubmitResult {
	result, err := s.engine.Submit(s.ctx, word)
	s.Require().ErrorIs(err, kind)
	var rejection *model.RejectionError
	s.Require().True(errors.As(err, &rejection))
	s.Equal(result.Root, rejection.Root)
	return result
}

// StartRound tests

func (s *EngineSuite) TestIdleByDefault() {
	s.False(s.engine.Active())
	_, ok := s.engine.Round()
	s.False(ok)
}

func (s *EngineSuite) TestSubmitBeforeStartFails() {
	_, err := s.engine.Submit(s.ctx, "dear")
	s.ErrorIs(err, model.ErrNoActiveRound)

	_, err = s.engine.Submit(s.ctx, "   ")
	s.ErrorIs(err, model.ErrNoActiveRound)
}

func (s *EngineSuite) TestStartRoundPicksRoot() {
	round := s.startWith(0)

	s.True(s.engine.Active())
	s.Equal(model.RootWord("garden"), round.Root)
	s.Empty(round.Accepted)
	s.Empty(round.Rejected)
	s.Equal(0, round.Score)
	s.Equal(s.clock.Now(), round.StartedAt)
}

func (s *EngineSuite) TestStartRoundFailsOnEmptyPool() {
	_ = s.words.LoadWords(nil)

	_, err := s.engine.StartRound(s.ctx)
	s.ErrorIs(err, model.ErrEmptyPool)
	s.False(s.engine.Active())
}

func (s *EngineSuite) TestStartRoundSeedsHighScoreFromStore() {
	s.scores.Value = 10
	s.startWith(0)

	s.Equal(10, s.engine.HighScore())
	s.Equal(1, s.scores.GetCalls)
}

func (s *EngineSuite) TestStartRoundStoreErrorKeepsPreviousRound() {
	s.startWith(0)
	s.submit("dear")

	s.scores.GetErr = errors.New("store down")
	s.random.QueueIntn(1)
	_, err := s.engine.StartRound(s.ctx)
	s.Error(err)

	round, ok := s.engine.Round()
	s.Require().True(ok)
	s.Equal(model.RootWord("garden"), round.Root)
	s.Equal([]string{"dear"}, round.Accepted)
}

// Submit tests

func (s *EngineSuite) TestAcceptsFormableRealWord() {
	s.startWith(0)

	result := s.submit("dear")
	s.Equal(model.OutcomeAccepted, result.Outcome)
	s.Equal("dear", result.Word)
	s.Equal(4, result.Score)
	s.Equal([]string{"dear"}, result.Accepted)
}

func (s *EngineSuite) TestAcceptedWordsAreMostRecentFirst() {
	s.startWith(0)
	s.submit("dear")
	s.submit("red")

	result := s.submit("danger")
	s.Equal([]string{"danger", "red", "dear"}, result.Accepted)
	s.Equal(13, result.Score)
}

func (s *EngineSuite) TestRejectsDuplicate() {
	s.startWith(0)
	s.submit("dear")

	result := s.requireRejection("dear", model.ErrDuplicateWord)
	s.Equal(model.OutcomeDuplicate, result.Outcome)
	s.Equal(4, result.Score)
	s.Empty(result.Rejected, "duplicates are not recorded as misses")
}

func (s *EngineSuite) TestDuplicateCheckedBeforeOtherRules() {
	s.startWith(0)
	s.submit("dear")
	lookups := len(s.dictionary.Lookups)

	// Even if the dictionary stops recognising it, a repeat is a duplicate
	delete(s.dictionary.Words, "dear")
	result := s.requireRejection("dear", model.ErrDuplicateWord)

	s.Equal(model.OutcomeDuplicate, result.Outcome)
	s.Len(s.dictionary.Lookups, lookups)
}

func (s *EngineSuite) TestRejectsUnformable() {
	s.startWith(0)

	result := s.requireRejection("zebra", model.ErrNotFormable)
	s.Equal(model.OutcomeNotFormable, result.Outcome)
	s.Equal([]string{"zebra"}, result.Rejected)
	s.Equal(0, result.Score)
}

func (s *EngineSuite) TestFormabilityCheckedBeforeDictionary() {
	s.startWith(0)
	s.requireRejection("zebra", model.ErrNotFormable)
	s.Empty(s.dictionary.Lookups)
}

func (s *EngineSuite) TestRejectedWordsAreNotDeduplicated() {
	s.startWith(0)
	s.requireRejection("zebra", model.ErrNotFormable)
	result := s.requireRejection("zebra", model.ErrNotFormable)

	s.Equal([]string{"zebra", "zebra"}, result.Rejected)
}

func (s *EngineSuite) TestRejectsUnrecognized() {
	s.startWith(0)

	result := s.requireRejection("dnger", model.ErrUnrecognizedWord)
	s.Equal(model.OutcomeUnrecognized, result.Outcome)
	s.Equal([]string{"dnger"}, result.Rejected)
}

func (s *EngineSuite) TestRejectsRootWord() {
	s.startWith(0)

	result := s.requireRejection("garden", model.ErrUnrecognizedWord)
	s.Equal([]string{"garden"}, result.Rejected)
	s.Empty(result.Accepted)
}

func (s *EngineSuite) TestMultisetFormability() {
	s.startWith(1) // apple

	s.Equal(model.OutcomeAccepted, s.submit("pale").Outcome)
	s.requireRejection("apples", model.ErrNotFormable)
	s.requireRejection("appall", model.ErrNotFormable)
}

func (s *EngineSuite) TestAnagramOfRootIsAccepted() {
	s.startWith(0)

	result := s.submit("danger")
	s.Equal(model.OutcomeAccepted, result.Outcome)
	s.Equal(6, result.Score)
}

func (s *EngineSuite) TestNormalizesWhitespaceAndCase() {
	s.startWith(0)

	result := s.submit("  Dear ")
	s.Equal("dear", result.Word)
	s.Equal([]string{"dear"}, result.Accepted)

	s.requireRejection("DEAR", model.ErrDuplicateWord)
}

func (s *EngineSuite) TestEmptyInputIsNoOp() {
	s.startWith(0)
	s.submit("dear")

	for _, input := range []string{"", "   ", "\t\n"} {
		result := s.submit(input)
		s.Equal(model.OutcomeNoOp, result.Outcome)
		s.Equal(4, result.Score)
		s.Empty(result.Rejected)
	}
	round, _ := s.engine.Round()
	s.Equal([]string{"dear"}, round.Accepted)
}

func (s *EngineSuite) TestScoreIsSumOfAcceptedLengths() {
	s.startWith(0)

	for _, w := range []string{"dear", "zebra", "read", "dear", "den", "xyz", "grand", "", "rage"} {
		result, _ := s.engine.Submit(s.ctx, w)
		total := lo.SumBy(result.Accepted, func(a string) int { return len(a) })
		s.Equal(total, result.Score, "after %q", w)
	}
}

// High score tests

func (s *EngineSuite) TestHighScoreOnlyRises() {
	s.scores.Value = 10
	s.startWith(0)

	s.submit("dear")
	result := s.submit("read")
	s.Equal(8, result.Score)
	s.Equal(10, result.HighScore)
	s.False(result.NewHighScore)
	s.Empty(s.scores.SetCalls)

	result = s.submit("dare")
	s.Equal(12, result.Score)
	s.Equal(12, result.HighScore)
	s.True(result.NewHighScore)
	s.Equal(12, s.scores.Value)

	round, err := s.engine.RestartRound(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, round.Score)
	s.Equal(12, s.engine.HighScore())
	s.Equal(12, s.scores.Value)
}

func (s *EngineSuite) TestHighScoreSavedOnEveryImprovement() {
	s.startWith(0)
	s.submit("dear")
	s.submit("red")

	s.Equal([]int{4, 7}, s.scores.SetCalls)
}

func (s *EngineSuite) TestHighScoreSaveFailureKeepsWord() {
	logger, logs := testutil.CaptureLogger()
	s.engine = NewEngine(s.words, s.dictionary, s.scores, s.clock, language.English, logger)
	s.scores.SetErr = errors.New("disk full")
	s.startWith(0)

	result := s.submit("dear")
	s.Equal(model.OutcomeAccepted, result.Outcome)
	s.True(result.NewHighScore)
	s.Equal(4, s.engine.HighScore())
	s.Equal(0, s.scores.Value)
	s.Contains(logs.String(), "level=ERROR")
	s.Contains(logs.String(), "disk full")
}

// Restart tests

func (s *EngineSuite) TestRestartClearsRound() {
	s.startWith(0)
	s.submit("dear")
	s.requireRejection("zebra", model.ErrNotFormable)

	s.random.QueueIntn(2)
	round, err := s.engine.RestartRound(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.RootWord("silent"), round.Root)
	s.Empty(round.Accepted)
	s.Empty(round.Rejected)
	s.Equal(0, round.Score)
}

func (s *EngineSuite) TestRestartMayRepeatRoot() {
	s.startWith(0)
	round := s.startWith(0)
	s.Equal(model.RootWord("garden"), round.Root)
}

func (s *EngineSuite) TestRoundReturnsCopy() {
	s.startWith(0)
	s.submit("dear")

	round, _ := s.engine.Round()
	round.Accepted[0] = "mutated"

	again, _ := s.engine.Round()
	s.Equal([]string{"dear"}, again.Accepted)
}

// Hint tests

func (s *EngineSuite) TestHintRequiresActiveRound() {
	_, err := s.engine.Hint()
	s.ErrorIs(err, model.ErrNoActiveRound)
}

func (s *EngineSuite) TestHintWithoutWordFinder() {
	s.startWith(0)

	hint, err := s.engine.Hint()
	s.Require().NoError(err)
	s.Equal("Try to think of the words that are related to garden!", hint.Text)
	s.Equal(0, hint.Remaining)
}

func (s *EngineSuite) TestTurkishRootAndCandidateFoldAlike() {
	pool := words.New(memory.New(), s.random, language.Turkish)
	_ = pool.LoadWords([]string{"IRMAK"})
	dict := dictionary.New(memory.New(), language.Turkish)
	_ = dict.LoadWords([]string{"ırk", "kar"})
	engine := NewEngine(pool, dict, s.scores, s.clock, language.Turkish, testutil.NopLogger())

	s.random.QueueIntn(0)
	round, err := engine.StartRound(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.RootWord("ırmak"), round.Root)

	result, err := engine.Submit(s.ctx, "IRK")
	s.Require().NoError(err)
	s.Equal(model.OutcomeAccepted, result.Outcome)
	s.Equal("ırk", result.Word)
	s.Equal(3, result.Score)
}

func (s *EngineSuite) TestHintCountsRemainingWords() {
	dict := dictionary.New(memory.New(), language.English)
	_ = dict.LoadWords([]string{"garden", "dear", "read", "den", "zebra"})
	engine := NewEngine(s.words, dict, s.scores, s.clock, language.English, testutil.NopLogger())

	s.random.QueueIntn(0)
	_, err := engine.StartRound(s.ctx)
	s.Require().NoError(err)

	hint, _ := engine.Hint()
	s.Equal(3, hint.Remaining)

	_, err = engine.Submit(s.ctx, "dear")
	s.Require().NoError(err)
	hint, _ = engine.Hint()
	s.Equal(2, hint.Remaining)
}
