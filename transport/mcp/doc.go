// Package mcp exposes the puzzle to AI agents over the Model Context Protocol.
//
// The server wraps the game service directly, so tools see the same
// semantics as the REST API and the terminal frontend.
//
// Tools:
//   - new_game: create a session with an optional grid size
//   - list_sessions: list active sessions
//   - game_state: render the current board with move count and timer
//   - move: slide a tile by direction (up/down/left/right)
//   - move_tile: slide a tile by its row and column
//   - restart: reshuffle the board, resetting moves and timer
//   - hint: next move toward the solution
//   - high_scores: ranked results for a grid size
//   - delete_session: discard a session
//
// Boards render as text grids with the blank shown as a dot, which keeps
// tool output readable for models without a display.
package mcp
