package session

import (
	"errors"
	"testing"

	"github.com/dmateus/slidepuzzle/game/engine"
)

func newTestPersistence(t *testing.T) *FilePersistence {
	t.Helper()

	fp, err := NewFilePersistence(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}
	return fp
}

func TestFilePersistence_SaveLoadRoundTrip(t *testing.T) {
	fp := newTestPersistence(t)
	m := NewManagerWithPersistence(fp)

	sess, err := m.Create("round", 4)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Play a few moves so there is progress worth restoring.
	moves := 0
	for _, d := range engine.Directions {
		if sess.Engine.Move(d) {
			moves++
		}
	}
	if moves == 0 {
		t.Fatal("expected at least one accepted move")
	}
	if err := m.Save(sess.ID); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := fp.Load("round")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Size != 4 {
		t.Errorf("expected size 4, got %d", loaded.Size)
	}
	if loaded.Engine.State().Moves != moves {
		t.Errorf("expected %d restored moves, got %d", moves, loaded.Engine.State().Moves)
	}

	// The restored board must match tile for tile.
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if loaded.Engine.Board().TileAt(r, c) != sess.Engine.Board().TileAt(r, c) {
				t.Fatalf("restored board differs at (%d,%d)", r, c)
			}
		}
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	fp := newTestPersistence(t)
	if _, err := fp.Load("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_DeleteAndList(t *testing.T) {
	fp := newTestPersistence(t)
	m := NewManagerWithPersistence(fp)

	a, _ := m.Create("aaaa", 3)
	b, _ := m.Create("bbbb", 3)

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 persisted sessions, got %d", len(ids))
	}

	if err := fp.Delete(a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fp.Exists(a.ID) {
		t.Error("deleted session should not exist")
	}
	if !fp.Exists(b.ID) {
		t.Error("other session should still exist")
	}
}

func TestManager_ResumesFromPersistence(t *testing.T) {
	dir := t.TempDir()

	fp, err := NewFilePersistence(dir)
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}
	first := NewManagerWithPersistence(fp)
	sess, err := first.Create("resume", 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	created := sess.CreatedAt

	// A second manager over the same directory, simulating a restart.
	fp2, err := NewFilePersistence(dir)
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}
	second := NewManagerWithPersistence(fp2)
	if err := second.LoadPersistedSessions(); err != nil {
		t.Fatalf("LoadPersistedSessions failed: %v", err)
	}
	if second.Count() != 1 {
		t.Fatalf("expected 1 resumed session, got %d", second.Count())
	}

	resumed, err := second.Get("resume")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !resumed.CreatedAt.Equal(created) {
		t.Errorf("creation time lost: %s vs %s", created, resumed.CreatedAt)
	}
}
