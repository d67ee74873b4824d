package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/vocify/internal/dependencies/clock"
	"github.com/mcoot/vocify/internal/dependencies/random"
	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/services/round"
)

const (
	idLength   = 12
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxIDTries = 5
)

// EngineFactory creates a fresh, idle engine for a new session
type EngineFactory func() *round.Engine

// session is one hosted game. mu serializes every call into engine;
// info is guarded by the manager's lock.
type session struct {
	mu     sync.Mutex
	info   model.SessionInfo
	engine *round.Engine
}

// Manager hosts one round engine per session
type Manager struct {
	newEngine EngineFactory
	clock     clock.Clock
	random    random.Random
	ttl       time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[model.SessionID]*session
}

// NewManager creates a session manager. Sessions idle for longer than ttl
// expire; a zero ttl disables expiry.
func NewManager(
	newEngine EngineFactory,
	clock clock.Clock,
	random random.Random,
	ttl time.Duration,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		newEngine: newEngine,
		clock:     clock,
		random:    random,
		ttl:       ttl,
		logger:    logger,
		sessions:  make(map[model.SessionID]*session),
	}
}

// Create starts a new session with an active round
func (m *Manager) Create(ctx context.Context) (model.SessionInfo, model.Round, error) {
	engine := m.newEngine()
	r, err := engine.StartRound(ctx)
	if err != nil {
		return model.SessionInfo{}, model.Round{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := m.newID()
	if err != nil {
		return model.SessionInfo{}, model.Round{}, err
	}

	now := m.clock.Now()
	s := &session{
		info:   model.SessionInfo{ID: id, CreatedAt: now, LastActive: now},
		engine: engine,
	}
	m.sessions[id] = s

	m.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("root", string(r.Root)),
	)

	return s.info, r, nil
}

// newID must be called with m.mu held
func (m *Manager) newID() (model.SessionID, error) {
	for i := 0; i < maxIDTries; i++ {
		id := model.SessionID(m.random.String(idLength, idAlphabet))
		if id == "" {
			continue
		}
		if _, taken := m.sessions[id]; !taken {
			return id, nil
		}
	}
	return "", errors.New("could not allocate a session id")
}

// touch returns the live session and marks it active, removing it instead
// if it has expired
func (m *Manager) touch(id model.SessionID) (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	if m.expired(s) {
		delete(m.sessions, id)
		return nil, model.ErrSessionNotFound
	}
	s.info.LastActive = m.clock.Now()
	return s, nil
}

func (m *Manager) expired(s *session) bool {
	return m.ttl > 0 && m.clock.Now().Sub(s.info.LastActive) > m.ttl
}

// Do runs fn against the session's engine while holding the session lock
func (m *Manager) Do(id model.SessionID, fn func(engine *round.Engine) error) error {
	s, err := m.touch(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

// Info returns the session's metadata
func (m *Manager) Info(id model.SessionID) (model.SessionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || m.expired(s) {
		return model.SessionInfo{}, model.ErrSessionNotFound
	}
	return s.info, nil
}

// Round returns a copy of the session's current round and its high score
func (m *Manager) Round(id model.SessionID) (model.Round, int, error) {
	var (
		r         model.Round
		highScore int
	)
	err := m.Do(id, func(engine *round.Engine) error {
		current, ok := engine.Round()
		if !ok {
			return model.ErrNoActiveRound
		}
		r = current
		highScore = engine.HighScore()
		return nil
	})
	return r, highScore, err
}

// Restart replaces the session's round with a fresh one
func (m *Manager) Restart(ctx context.Context, id model.SessionID) (model.Round, error) {
	var r model.Round
	err := m.Do(id, func(engine *round.Engine) error {
		var err error
		r, err = engine.RestartRound(ctx)
		return err
	})
	return r, err
}

// Submit checks a word in the session's round
func (m *Manager) Submit(ctx context.Context, id model.SessionID, word string) (model.SubmitResult, error) {
	var result model.SubmitResult
	err := m.Do(id, func(engine *round.Engine) error {
		var err error
		result, err = engine.Submit(ctx, word)
		return err
	})
	return result, err
}

// Hint returns a hint for the session's round
func (m *Manager) Hint(id model.SessionID) (model.Hint, error) {
	var hint model.Hint
	err := m.Do(id, func(engine *round.Engine) error {
		var err error
		hint, err = engine.Hint()
		return err
	})
	return hint, err
}

// Delete ends a session
func (m *Manager) Delete(id model.SessionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(m.sessions, id)

	m.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// Sweep removes expired sessions and returns how many were removed
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("expired sessions removed", slog.Int("count", removed))
	}
	return removed
}

// Count returns the number of hosted sessions, expired or not
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
