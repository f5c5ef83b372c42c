package session

import (
	"errors"
	"testing"
	"time"
)

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager()

	sess, err := m.Create("", 4)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected a generated session ID")
	}
	if sess.Size != 4 {
		t.Errorf("expected size 4, got %d", sess.Size)
	}
	if sess.Engine == nil {
		t.Fatal("expected session to own an engine")
	}

	got, err := m.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != sess {
		t.Error("Get returned a different session")
	}
}

func TestManager_GetIsCaseInsensitive(t *testing.T) {
	m := NewManager()

	if _, err := m.Create("AbCd", 3); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := m.Get("abcd"); err != nil {
		t.Errorf("expected case-insensitive lookup, got %v", err)
	}
	if _, err := m.Get("ABCD"); err != nil {
		t.Errorf("expected case-insensitive lookup, got %v", err)
	}
}

func TestManager_CreateDuplicate(t *testing.T) {
	m := NewManager()

	if _, err := m.Create("dup", 3); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := m.Create("dup", 3); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("expected ErrSessionAlreadyExists, got %v", err)
	}
}

func TestManager_CreateInvalidSize(t *testing.T) {
	m := NewManager()
	if _, err := m.Create("", 1); err == nil {
		t.Error("expected error for invalid grid size")
	}
	if m.Count() != 0 {
		t.Errorf("failed create must not leave a session behind, count=%d", m.Count())
	}
}

func TestManager_Delete(t *testing.T) {
	m := NewManager()

	sess, err := m.Create("", 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := m.Delete(sess.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := m.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := m.Delete(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for double delete, got %v", err)
	}
}

func TestManager_CleanupExpiredSessions(t *testing.T) {
	m := NewManager()

	stale, err := m.Create("stale", 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := m.Create("fresh", 3); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stale.LastAccessedAt = time.Now().Add(-48 * time.Hour)

	removed := m.CleanupExpiredSessions(24 * time.Hour)
	if removed != 1 {
		t.Errorf("expected 1 removed session, got %d", removed)
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 remaining session, got %d", m.Count())
	}
	if _, err := m.Get("fresh"); err != nil {
		t.Errorf("fresh session should survive cleanup: %v", err)
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	m := NewManager()

	sess, err := m.Create("touch", 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	before := sess.LastAccessedAt

	time.Sleep(5 * time.Millisecond)
	if err := m.UpdateLastAccessed("touch"); err != nil {
		t.Fatalf("UpdateLastAccessed failed: %v", err)
	}
	if !sess.LastAccessedAt.After(before) {
		t.Error("expected last accessed time to advance")
	}

	if err := m.UpdateLastAccessed("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}
