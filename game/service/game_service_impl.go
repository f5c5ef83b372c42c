package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/dmateus/slidepuzzle/game/engine"
	"github.com/dmateus/slidepuzzle/game/scores"
)

// gameServiceImpl implements the GameService interface.
type gameServiceImpl struct {
	sessions SessionManager
	scores   scores.Store
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance.
func NewGameService(sessions SessionManager, scoreStore scores.Store) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		scores:   scoreStore,
	}
}

// CreateSession starts a new puzzle of the given grid size.
func (s *gameServiceImpl) CreateSession(ctx context.Context, size int) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Create("", size)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sessionInfo(session), nil
}

// GetSession retrieves session information.
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sessionInfo(session), nil
}

// ListSessions returns all active sessions.
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session.
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move slides the tile adjacent to the blank in the given direction.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, direction engine.Direction) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyMove(sessionID, func(e *engine.GameEngine) bool {
		return e.Move(direction)
	})
}

// MoveTile slides the tile at (row, col) into the adjacent blank.
func (s *gameServiceImpl) MoveTile(ctx context.Context, sessionID string, row, col int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyMove(sessionID, func(e *engine.GameEngine) bool {
		return e.MoveTile(row, col)
	})
}

// applyMove runs one move against a session, records the score on a win,
// and persists the session. Illegal moves come back Accepted=false with an
// untouched board; they are not errors.
func (s *gameServiceImpl) applyMove(sessionID string, move func(*engine.GameEngine) bool) (*MoveResult, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	wonBefore := sess.Engine.IsWon()
	accepted := move(sess.Engine)

	result := &MoveResult{
		Accepted: accepted,
		Won:      sess.Engine.IsWon(),
		State:    Snapshot(sess.Engine),
	}

	if accepted && !wonBefore && sess.Engine.IsWon() {
		entry := scores.NewEntry(sess.Engine.State().Moves, sess.Engine.State().Elapsed())
		if err := s.scores.Add(sess.Size, entry); err != nil {
			// Non-fatal: the game stays playable, the score is lost.
			log.Printf("Warning: failed to save high score for session %s: %v", sessionID, err)
			result.Message = fmt.Sprintf("high score could not be saved: %v", err)
		} else {
			result.ScoreSaved = true
		}
	}

	if accepted {
		if err := s.sessions.Save(sessionID); err != nil {
			log.Printf("Warning: failed to persist session %s: %v", sessionID, err)
		}
	}

	return result, nil
}

// Restart replaces the session's board with a fresh solvable one and
// resets its counters.
func (s *gameServiceImpl) Restart(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if err := sess.Engine.Restart(); err != nil {
		return nil, fmt.Errorf("failed to restart session: %w", err)
	}
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: failed to persist session %s: %v", sessionID, err)
	}
	return sessionInfo(sess), nil
}

// GetGameState returns the current board snapshot of a session.
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*BoardState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return Snapshot(sess.Engine), nil
}

// Hint returns the next move on a constructive solution of the session's
// board.
func (s *gameServiceImpl) Hint(ctx context.Context, sessionID string) (*HintResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	direction, ok := sess.Engine.Hint()
	if !ok {
		return &HintResult{Solved: true}, nil
	}
	return &HintResult{Direction: direction}, nil
}

// TopScores returns the recorded scores for a grid size, best first.
func (s *gameServiceImpl) TopScores(ctx context.Context, size int) ([]scores.Entry, error) {
	return s.scores.Get(size)
}

// ScoreSizes returns the grid sizes that have recorded scores.
func (s *gameServiceImpl) ScoreSizes(ctx context.Context) ([]int, error) {
	return s.scores.Sizes()
}

func sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		Size:           sess.Size,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		State:          Snapshot(sess.Engine),
	}
}
