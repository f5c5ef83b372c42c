// Package api exposes the puzzle over a JSON REST API.
//
// Endpoints:
//
// Session Management:
//   - POST   /api/sessions             create a session ({"size": 4})
//   - GET    /api/sessions             list sessions
//   - GET    /api/sessions/{id}        get a session
//   - DELETE /api/sessions/{id}        delete a session
//
// Game Operations:
//   - GET  /api/sessions/{id}/state    current board state
//   - POST /api/sessions/{id}/move     slide by direction ({"direction": "up"})
//   - POST /api/sessions/{id}/tile     slide by tile position ({"row": 1, "col": 2})
//   - POST /api/sessions/{id}/restart  reshuffle the board
//   - GET  /api/sessions/{id}/hint     next move toward the solution
//
// High Scores:
//   - GET /api/scores?size=4           ranked entries for a grid size
//   - GET /api/scores/sizes            grid sizes with recorded scores
//
// Live Updates:
//   - GET /ws?session={id}             WebSocket state stream
//
// All endpoints accept and return JSON. Errors come back as
// {"error": "message"} with an appropriate HTTP status code. Mutating
// operations broadcast the resulting state to WebSocket spectators.
package api
