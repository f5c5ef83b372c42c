package engine

import "time"

// Status tracks the session-level state machine.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
)

// GameState holds the per-session move counter and elapsed-time clock.
//
// The clock banks elapsed time across pause/resume cycles so a suspended
// session does not accumulate wall time while on disk. Frontends poll
// Elapsed from their render loop; the state itself never ticks.
type GameState struct {
	Moves  int    `json:"moves"`
	Status Status `json:"status"`

	startedAt time.Time
	banked    time.Duration
	running   bool
}

// NewGameState returns a fresh state with the clock running.
func NewGameState() *GameState {
	return &GameState{
		Status:    StatusNotStarted,
		startedAt: time.Now(),
		running:   true,
	}
}

// Elapsed returns the total time the clock has been running.
func (s *GameState) Elapsed() time.Duration {
	if s.running {
		return s.banked + time.Since(s.startedAt)
	}
	return s.banked
}

// Pause stops the clock, banking the time accumulated so far.
func (s *GameState) Pause() {
	if s.running {
		s.banked += time.Since(s.startedAt)
		s.running = false
	}
}

// Resume restarts the clock after a pause.
func (s *GameState) Resume() {
	if !s.running {
		s.startedAt = time.Now()
		s.running = true
	}
}

// IncrementMoves records one accepted move.
func (s *GameState) IncrementMoves() {
	s.Moves++
}

// Reset zeroes the counter and restarts the clock for a new board.
func (s *GameState) Reset() {
	s.Moves = 0
	s.Status = StatusNotStarted
	s.banked = 0
	s.startedAt = time.Now()
	s.running = true
}

// restore reinstates a persisted counter and banked clock, clock paused.
// The engine resumes it on the next accepted move.
func (s *GameState) restore(moves int, elapsed time.Duration, status Status) {
	s.Moves = moves
	s.Status = status
	s.banked = elapsed
	s.running = false
}
