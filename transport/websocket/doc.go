// Package websocket pushes live board updates to connected spectators.
//
// A central Hub tracks connections grouped by session ID. After every
// mutating operation the API layer asks the hub to broadcast the fresh
// board state, so anyone watching a session (a browser rendering the
// puzzle, a second terminal) sees moves as they happen.
//
// Clients connect to /ws?sessionId=abc1. The server only pushes; incoming
// frames are read and discarded to keep the connection alive. Each outgoing
// message is a JSON envelope:
//
//	{"session_id": "abc1", "event": "state_update", "board_state": {...}}
//
// Win notifications reuse the same envelope with event "won".
package websocket
