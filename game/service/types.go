package service

import (
	"time"

	"github.com/dmateus/slidepuzzle/game/engine"
)

// BoardState is the transport-facing snapshot of one puzzle.
type BoardState struct {
	Board          *engine.Board `json:"board"`
	Moves          int           `json:"moves"`
	ElapsedSeconds float64       `json:"elapsed_seconds"`
	Status         engine.Status `json:"status"`
	Won            bool          `json:"won"`
}

// SessionInfo describes a session and its current state.
type SessionInfo struct {
	ID             string      `json:"id"`
	Size           int         `json:"size"`
	CreatedAt      time.Time   `json:"created_at"`
	LastAccessedAt time.Time   `json:"last_accessed_at"`
	State          *BoardState `json:"state"`
}

// MoveResult is the outcome of a single move request.
type MoveResult struct {
	Accepted bool        `json:"accepted"`
	Won      bool        `json:"won"`
	State    *BoardState `json:"state"`

	// ScoreSaved is set on winning moves. A failed save is reported in
	// Message and never fails the move itself.
	ScoreSaved bool   `json:"score_saved,omitempty"`
	Message    string `json:"message,omitempty"`
}

// HintResult carries the suggested next move.
type HintResult struct {
	Direction engine.Direction `json:"direction,omitempty"`
	Solved    bool             `json:"solved"`
}

// Session is one live puzzle owned by the session manager.
type Session struct {
	ID             string
	Size           int
	Engine         *engine.GameEngine
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// Snapshot builds the transport-facing state of a session's engine.
func Snapshot(e *engine.GameEngine) *BoardState {
	return &BoardState{
		Board:          e.Board(),
		Moves:          e.State().Moves,
		ElapsedSeconds: e.State().Elapsed().Seconds(),
		Status:         e.Status(),
		Won:            e.IsWon(),
	}
}
