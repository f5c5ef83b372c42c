package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmateus/slidepuzzle/game/engine"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Default values used when the corresponding environment variable is unset.
const (
	DefaultDataDirName = ".slidepuzzle"
	DefaultScoresName  = "high_scores.json"
	DefaultSessionsDir = "sessions"
	DefaultSize        = 4

	// Playable bounds for interactive frontends. The engine itself accepts
	// a wider range; these keep the CLI board readable.
	MinPlayableSize = 3
	MaxPlayableSize = 8
)

// Config holds the resolved runtime settings.
type Config struct {
	// DataDir is the base directory for all persisted state.
	DataDir string
	// ScoresFile is the path of the shared high score file.
	ScoresFile string
	// SessionsDir is where saved games live, one JSON file per session.
	SessionsDir string
	// DefaultSize is the grid size used when none is requested.
	DefaultSize int
}

// Load resolves configuration from the environment, filling in defaults
// for anything unset.
func Load() (*Config, error) {
	dataDir := os.Getenv("SLIDEPUZZLE_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home directory (containers, stripped-down CI). Fall back
			// to the working directory.
			home = "."
		}
		dataDir = filepath.Join(home, DefaultDataDirName)
	}

	scoresFile := os.Getenv("SLIDEPUZZLE_SCORES_FILE")
	if scoresFile == "" {
		scoresFile = filepath.Join(dataDir, DefaultScoresName)
	}

	sessionsDir := os.Getenv("SLIDEPUZZLE_SESSIONS_DIR")
	if sessionsDir == "" {
		sessionsDir = filepath.Join(dataDir, DefaultSessionsDir)
	}

	defaultSize := DefaultSize
	if raw := os.Getenv("SLIDEPUZZLE_DEFAULT_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: SLIDEPUZZLE_DEFAULT_SIZE=%q is not a number", ErrInvalidConfig, raw)
		}
		defaultSize = parsed
	}

	cfg := &Config{
		DataDir:     dataDir,
		ScoresFile:  scoresFile,
		SessionsDir: sessionsDir,
		DefaultSize: defaultSize,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data directory is empty", ErrInvalidConfig)
	}
	if c.ScoresFile == "" {
		return fmt.Errorf("%w: scores file is empty", ErrInvalidConfig)
	}
	if c.SessionsDir == "" {
		return fmt.Errorf("%w: sessions directory is empty", ErrInvalidConfig)
	}
	if err := ValidatePlayableSize(c.DefaultSize); err != nil {
		return err
	}
	return nil
}

// ValidatePlayableSize checks a grid size against the interactive bounds.
func ValidatePlayableSize(size int) error {
	if size < MinPlayableSize || size > MaxPlayableSize {
		return fmt.Errorf("%w: grid size must be between %d and %d, got %d",
			engine.ErrInvalidSize, MinPlayableSize, MaxPlayableSize, size)
	}
	return nil
}
