package session

import (
	"time"

	"github.com/dmateus/slidepuzzle/game/engine"
	"github.com/dmateus/slidepuzzle/game/service"
)

// SessionPersistence defines the interface for persisting sessions.
type SessionPersistence interface {
	// Save persists a session to storage.
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID.
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage.
	Delete(id string) error

	// ListAll returns all persisted session IDs.
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage.
	Exists(id string) bool
}

// PersistedSessionData is the JSON structure for a saved session. The
// board and counters are enough to rebuild the engine; the clock resumes
// from the banked elapsed time on the next move.
type PersistedSessionData struct {
	ID             string        `json:"id"`
	Size           int           `json:"size"`
	CreatedAt      time.Time     `json:"created_at"`
	LastAccessedAt time.Time     `json:"last_accessed_at"`
	Board          *engine.Board `json:"board"`
	Moves          int           `json:"moves"`
	ElapsedSeconds float64       `json:"elapsed_seconds"`
}
