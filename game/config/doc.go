// Package config resolves runtime settings for the puzzle.
//
// Settings come from environment variables with sensible defaults, so the
// game runs with zero setup and deployments can still relocate state:
//
//   - SLIDEPUZZLE_DATA_DIR     base directory for all persisted state
//   - SLIDEPUZZLE_SCORES_FILE  high score file path (default <data>/high_scores.json)
//   - SLIDEPUZZLE_SESSIONS_DIR session directory (default <data>/sessions)
//   - SLIDEPUZZLE_DEFAULT_SIZE default grid size for new games
//
// Load callers typically run godotenv first so a local .env file can feed
// these variables during development.
package config
