package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/vocify/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// High score tests

func (s *StorageSuite) TestHighScoreDefaultsToZero() {
	score, err := s.storage.GetHighScore(s.ctx, "Highscore")
	s.Require().NoError(err)
	s.Equal(0, score)
}

func (s *StorageSuite) TestSetAndGetHighScore() {
	s.Require().NoError(s.storage.SetHighScore(s.ctx, "Highscore", 17))

	score, err := s.storage.GetHighScore(s.ctx, "Highscore")
	s.Require().NoError(err)
	s.Equal(17, score)

	raw, err := s.mini.Get(highScoreKey("Highscore"))
	s.Require().NoError(err)
	s.Equal("17", raw)
}

func (s *StorageSuite) TestSetHighScoreNeverLowers() {
	s.Require().NoError(s.storage.SetHighScore(s.ctx, "Highscore", 16))
	s.Require().NoError(s.storage.SetHighScore(s.ctx, "Highscore", 4))

	score, err := s.storage.GetHighScore(s.ctx, "Highscore")
	s.Require().NoError(err)
	s.Equal(16, score)

	s.Require().NoError(s.storage.SetHighScore(s.ctx, "Highscore", 20))
	raw, err := s.mini.Get(highScoreKey("Highscore"))
	s.Require().NoError(err)
	s.Equal("20", raw)
}

func (s *StorageSuite) TestHighScoreHasNoTTL() {
	_ = s.storage.SetHighScore(s.ctx, "Highscore", 5)
	s.Equal(int64(0), int64(s.mini.TTL(highScoreKey("Highscore"))))
}

func (s *StorageSuite) TestSetNegativeHighScoreFails() {
	err := s.storage.SetHighScore(s.ctx, "Highscore", -4)
	s.ErrorIs(err, model.ErrNegativeScore)
}

func (s *StorageSuite) TestGetHighScoreCorruptValue() {
	s.Require().NoError(s.mini.Set(highScoreKey("Highscore"), "not-a-number"))

	_, err := s.storage.GetHighScore(s.ctx, "Highscore")
	s.Error(err)
}

// Dictionary tests

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"dear", "read", "garden"}
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, words))

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplaces() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"old", "words"})
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"new"})

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, retrieved)
}

// Word pool tests

func (s *StorageSuite) TestGetWordPoolNotLoaded() {
	_, err := s.storage.GetWordPool(s.ctx)
	s.ErrorIs(err, model.ErrWordPoolNotLoaded)
}

func (s *StorageSuite) TestSaveWordPoolPreservesOrder() {
	pool := []string{"garden", "apple", "silent"}
	s.Require().NoError(s.storage.SaveWordPool(s.ctx, pool))

	retrieved, err := s.storage.GetWordPool(s.ctx)
	s.Require().NoError(err)
	s.Equal(pool, retrieved)
}

func (s *StorageSuite) TestSaveEmptyWordPool() {
	s.Require().NoError(s.storage.SaveWordPool(s.ctx, nil))

	retrieved, err := s.storage.GetWordPool(s.ctx)
	s.Require().NoError(err)
	s.Empty(retrieved)
}

// Connection tests

func (s *StorageSuite) TestNewConnectsByURL() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	store, err := New(cfg)
	s.Require().NoError(err)
	defer store.Close()

	s.Require().NoError(store.SetHighScore(s.ctx, "Highscore", 9))

	score, err := s.storage.GetHighScore(s.ctx, "Highscore")
	s.Require().NoError(err)
	s.Equal(9, score)
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	_, err := New(Config{URL: "not a url"})
	s.Error(err)
}
