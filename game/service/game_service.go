package service

import (
	"context"

	"github.com/dmateus/slidepuzzle/game/engine"
	"github.com/dmateus/slidepuzzle/game/scores"
)

// GameService defines all puzzle operations exposed to transports.
type GameService interface {
	// Session management
	CreateSession(ctx context.Context, size int) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game operations
	Move(ctx context.Context, sessionID string, direction engine.Direction) (*MoveResult, error)
	MoveTile(ctx context.Context, sessionID string, row, col int) (*MoveResult, error)
	Restart(ctx context.Context, sessionID string) (*SessionInfo, error)
	GetGameState(ctx context.Context, sessionID string) (*BoardState, error)
	Hint(ctx context.Context, sessionID string) (*HintResult, error)

	// High scores
	TopScores(ctx context.Context, size int) ([]scores.Entry, error)
	ScoreSizes(ctx context.Context) ([]int, error)
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id string, size int) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}
