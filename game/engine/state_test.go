package engine

import (
	"testing"
	"time"
)

func TestGameState_Counters(t *testing.T) {
	s := NewGameState()

	if s.Moves != 0 {
		t.Errorf("expected 0 moves, got %d", s.Moves)
	}
	s.IncrementMoves()
	s.IncrementMoves()
	if s.Moves != 2 {
		t.Errorf("expected 2 moves, got %d", s.Moves)
	}

	s.Reset()
	if s.Moves != 0 {
		t.Errorf("reset should zero the counter, got %d", s.Moves)
	}
	if s.Status != StatusNotStarted {
		t.Errorf("reset should return status to %s, got %s", StatusNotStarted, s.Status)
	}
}

func TestGameState_PauseBanksElapsedTime(t *testing.T) {
	s := NewGameState()

	time.Sleep(10 * time.Millisecond)
	s.Pause()

	banked := s.Elapsed()
	if banked <= 0 {
		t.Fatal("expected some elapsed time before pause")
	}

	time.Sleep(10 * time.Millisecond)
	if got := s.Elapsed(); got != banked {
		t.Errorf("clock advanced while paused: %s -> %s", banked, got)
	}

	s.Resume()
	time.Sleep(10 * time.Millisecond)
	if got := s.Elapsed(); got <= banked {
		t.Errorf("clock did not advance after resume: %s", got)
	}
}

func TestGameState_PauseIsIdempotent(t *testing.T) {
	s := NewGameState()
	s.Pause()
	banked := s.Elapsed()
	s.Pause()
	if got := s.Elapsed(); got != banked {
		t.Errorf("second pause changed the banked time: %s -> %s", banked, got)
	}

	s.Resume()
	s.Resume()
	if s.Elapsed() < banked {
		t.Error("resume lost banked time")
	}
}
