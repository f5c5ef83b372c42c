package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dmateus/slidepuzzle/game/engine"
	"github.com/dmateus/slidepuzzle/game/service"
)

// Server wraps the game service behind an MCP tool surface.
type Server struct {
	service     service.GameService
	defaultSize int
	mcpServer   *server.MCPServer
}

// NewServer creates an MCP server over the given game service.
func NewServer(gameService service.GameService, defaultSize int) *Server {
	s := &Server{
		service:     gameService,
		defaultSize: defaultSize,
	}

	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Sliding Tile Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sliding Tile Puzzle - MCP Interface

GAME OBJECTIVE:
Arrange the numbered tiles in ascending order, left to right, top to
bottom, with the blank in the bottom-right corner.

RULES:
- Only tiles adjacent to the blank can slide, one step at a time.
- Directions name the neighboring tile relative to the BLANK: "up"
  selects the tile above the blank, which slides into the blank's cell.
- Illegal moves are ignored and do not count.
- Every board is shuffled to a solvable arrangement.

AVAILABLE TOOLS:
- new_game: Start a session (optional grid size, default 4)
- game_state: See the board, move count, and elapsed time
- move: Slide a tile by direction
- move_tile: Slide a tile by its position
- hint: Ask for the next move toward the solution
- restart: Reshuffle the board
- high_scores: Ranked results for a grid size
- list_sessions / delete_session: Manage sessions

Boards render as grids with the blank shown as a dot (·).`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new puzzle session with a shuffled, solvable board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"size": map[string]interface{}{
					"type":        "integer",
					"description": "Grid size, e.g. 4 for the classic 15-puzzle (optional)",
				},
			},
		},
	}, s.handleNewGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSessions)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, move count, and elapsed time",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide a tile in a direction. Directions name the tile's position relative to the blank: 'up' slides the tile above the blank into it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Position of the sliding tile relative to the blank",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move_tile",
		Description: "Slide the tile at a given position into the blank. The tile must be orthogonally adjacent to the blank.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the tile to slide (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the tile to slide (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, s.handleMoveTile)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "restart",
		Description: "Reshuffle the board, resetting the move count and timer",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, s.handleRestart)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "hint",
		Description: "Get the next move toward the solution",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, s.handleHint)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "high_scores",
		Description: "Get ranked results (fewest moves, then fastest) for a grid size",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"size": map[string]interface{}{
					"type":        "integer",
					"description": "Grid size to look up (optional, default 4)",
				},
			},
		},
	}, s.handleHighScores)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_session",
		Description: "Discard a puzzle session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to delete",
				},
			},
			Required: []string{"session_id"},
		},
	}, s.handleDeleteSession)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Tool handlers

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	size := s.defaultSize
	if raw, ok := args["size"].(float64); ok && raw != 0 {
		size = int(raw)
	}

	session, err := s.service.CreateSession(ctx, size)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session %s (%dx%d)\n\n%s",
		session.ID, session.Size, session.Size, formatBoardState(session.State))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := s.service.ListSessions(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Active Sessions (%d):\n\n", len(sessions))
	for _, session := range sessions {
		fmt.Fprintf(&sb, "- %s (%dx%d, moves: %d, created: %s)\n",
			session.ID, session.Size, session.Size,
			session.State.Moves, session.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	state, err := s.service.GetGameState(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBoardState(state)), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	directionStr, _ := args["direction"].(string)

	direction, err := engine.ParseDirection(directionStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.Move(ctx, sessionID, direction)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(result)), nil
}

func (s *Server) handleMoveTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row, rowOK := args["row"].(float64)
	col, colOK := args["col"].(float64)
	if !rowOK || !colOK {
		return mcp.NewToolResultError("row and col must be integers"), nil
	}

	result, err := s.service.MoveTile(ctx, sessionID, int(row), int(col))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(result)), nil
}

func (s *Server) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	session, err := s.service.Restart(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Board reshuffled\n\n%s", formatBoardState(session.State))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleHint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	hint, err := s.service.Hint(ctx, sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if hint.Solved {
		return mcp.NewToolResultText("The puzzle is already solved."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Hint: move %s", hint.Direction)), nil
}

func (s *Server) handleHighScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	size := s.defaultSize
	if raw, ok := args["size"].(float64); ok && raw != 0 {
		size = int(raw)
	}

	entries, err := s.service.TopScores(ctx, size)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No high scores recorded for %dx%d yet.", size, size)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "High Scores %dx%d:\n\n", size, size)
	for i, e := range entries {
		fmt.Fprintf(&sb, "%2d. %4d moves  %8.2fs  %s\n", i+1, e.Moves, e.Time, e.Date)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleDeleteSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	if err := s.service.DeleteSession(ctx, sessionID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Session %s deleted", sessionID)), nil
}

// Formatters

func formatBoardState(state *service.BoardState) string {
	if state == nil {
		return "No game state available"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Moves: %d | Time: %.1fs | Status: %s\n\n",
		state.Moves, state.ElapsedSeconds, state.Status)
	sb.WriteString(state.Board.String())

	if state.Won {
		sb.WriteString("\nSolved! Congratulations.")
	}
	return sb.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var sb strings.Builder
	if result.Accepted {
		sb.WriteString("Move accepted\n\n")
	} else {
		sb.WriteString("Move ignored (not a legal slide)\n\n")
	}
	sb.WriteString(formatBoardState(result.State))

	if result.Message != "" {
		fmt.Fprintf(&sb, "\n%s", result.Message)
	}
	return sb.String()
}
