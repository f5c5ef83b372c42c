package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmateus/slidepuzzle/game/engine"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SLIDEPUZZLE_DATA_DIR", "")
	t.Setenv("SLIDEPUZZLE_SCORES_FILE", "")
	t.Setenv("SLIDEPUZZLE_SESSIONS_DIR", "")
	t.Setenv("SLIDEPUZZLE_DEFAULT_SIZE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir == "" {
		t.Error("expected a non-empty data directory")
	}
	if filepath.Base(cfg.ScoresFile) != DefaultScoresName {
		t.Errorf("expected scores file %q, got %q", DefaultScoresName, cfg.ScoresFile)
	}
	if filepath.Base(cfg.SessionsDir) != DefaultSessionsDir {
		t.Errorf("expected sessions dir %q, got %q", DefaultSessionsDir, cfg.SessionsDir)
	}
	if cfg.DefaultSize != DefaultSize {
		t.Errorf("expected default size %d, got %d", DefaultSize, cfg.DefaultSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SLIDEPUZZLE_DATA_DIR", dir)
	t.Setenv("SLIDEPUZZLE_SCORES_FILE", filepath.Join(dir, "scores.json"))
	t.Setenv("SLIDEPUZZLE_SESSIONS_DIR", filepath.Join(dir, "saves"))
	t.Setenv("SLIDEPUZZLE_DEFAULT_SIZE", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("expected data dir %q, got %q", dir, cfg.DataDir)
	}
	if cfg.ScoresFile != filepath.Join(dir, "scores.json") {
		t.Errorf("unexpected scores file %q", cfg.ScoresFile)
	}
	if cfg.SessionsDir != filepath.Join(dir, "saves") {
		t.Errorf("unexpected sessions dir %q", cfg.SessionsDir)
	}
	if cfg.DefaultSize != 5 {
		t.Errorf("expected default size 5, got %d", cfg.DefaultSize)
	}
}

func TestLoad_DerivedPathsFollowDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SLIDEPUZZLE_DATA_DIR", dir)
	t.Setenv("SLIDEPUZZLE_SCORES_FILE", "")
	t.Setenv("SLIDEPUZZLE_SESSIONS_DIR", "")
	t.Setenv("SLIDEPUZZLE_DEFAULT_SIZE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ScoresFile != filepath.Join(dir, DefaultScoresName) {
		t.Errorf("scores file should live under the data dir, got %q", cfg.ScoresFile)
	}
	if cfg.SessionsDir != filepath.Join(dir, DefaultSessionsDir) {
		t.Errorf("sessions dir should live under the data dir, got %q", cfg.SessionsDir)
	}
}

func TestLoad_InvalidSize(t *testing.T) {
	t.Setenv("SLIDEPUZZLE_DEFAULT_SIZE", "banana")
	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	t.Setenv("SLIDEPUZZLE_DEFAULT_SIZE", "99")
	if _, err := Load(); !errors.Is(err, engine.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestValidatePlayableSize(t *testing.T) {
	for _, size := range []int{3, 4, 8} {
		if err := ValidatePlayableSize(size); err != nil {
			t.Errorf("size %d should be playable: %v", size, err)
		}
	}
	for _, size := range []int{0, 2, 9, -1} {
		if err := ValidatePlayableSize(size); !errors.Is(err, engine.ErrInvalidSize) {
			t.Errorf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
	}
}
