package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmateus/slidepuzzle/game/engine"
	"github.com/dmateus/slidepuzzle/game/scores"
)

// scriptedInput writes commands to a file and opens it for line-mode input.
func scriptedInput(t *testing.T, commands ...string) *inputReader {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input")
	content := ""
	if len(commands) > 0 {
		content = strings.Join(commands, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input script: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open input script: %v", err)
	}
	t.Cleanup(func() { file.Close() })

	return newInputReader(file)
}

func testApp(t *testing.T, size int, commands ...string) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	app := &App{
		size:  size,
		store: scores.NewFileStore(filepath.Join(t.TempDir(), "high_scores.json")),
		input: scriptedInput(t, commands...),
		out:   out,
	}
	return app, out
}

func TestInputReader_LineMode(t *testing.T) {
	reader := scriptedInput(t, "up", "w", "DOWN", "left", "d", "hint", "solve", "restart", "bogus", "quit")

	want := []Action{
		ActionUp, ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionHint, ActionSolve, ActionRestart, ActionNone, ActionQuit,
	}
	for i, expected := range want {
		got, err := reader.ReadAction()
		if err != nil {
			t.Fatalf("ReadAction %d failed: %v", i, err)
		}
		if got != expected {
			t.Errorf("command %d: expected %q, got %q", i, expected, got)
		}
	}
}

func TestInputReader_EOFQuits(t *testing.T) {
	reader := scriptedInput(t)

	action, _ := reader.ReadAction()
	if action != ActionQuit {
		t.Errorf("expected quit on EOF, got %q", action)
	}
}

func TestRenderBoard(t *testing.T) {
	board, err := engine.NewSolvedBoard(3)
	if err != nil {
		t.Fatalf("NewSolvedBoard failed: %v", err)
	}

	rendered := renderBoard(board)
	lines := strings.Split(rendered, "\n")

	// 3 tile rows interleaved with 4 separators.
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), rendered)
	}
	if !strings.HasPrefix(lines[0], "+---+") {
		t.Errorf("unexpected separator: %q", lines[0])
	}
	if !strings.Contains(lines[1], "| 1 | 2 | 3 |") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	// Blank renders as spaces, not a zero.
	if strings.Contains(rendered, "0") {
		t.Errorf("blank should not render as 0:\n%s", rendered)
	}
	if !strings.Contains(lines[5], "| 7 | 8 |   |") {
		t.Errorf("unexpected last row: %q", lines[5])
	}
}

func TestRenderBoard_WideTiles(t *testing.T) {
	board, err := engine.NewSolvedBoard(4)
	if err != nil {
		t.Fatalf("NewSolvedBoard failed: %v", err)
	}

	rendered := renderBoard(board)
	// Two-digit tiles get a two-character column.
	if !strings.Contains(rendered, "| 15 |") {
		t.Errorf("expected padded two-digit tile:\n%s", rendered)
	}
	if !strings.Contains(rendered, "|  1 |") {
		t.Errorf("expected right-aligned single digit:\n%s", rendered)
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1:00"},
		{125 * time.Second, "2:05"},
		{3661 * time.Second, "61:01"},
	}
	for _, tc := range cases {
		if got := formatTime(tc.d); got != tc.want {
			t.Errorf("formatTime(%v): expected %q, got %q", tc.d, tc.want, got)
		}
	}
}

func TestPlayGame_QuitImmediately(t *testing.T) {
	app, out := testApp(t, 3, "quit")

	eng, err := engine.NewEngine(3)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	again, err := app.playGame(eng)
	if err != nil {
		t.Fatalf("playGame failed: %v", err)
	}
	if again {
		t.Error("quit should not request another round")
	}
	if !strings.Contains(out.String(), "Sliding Puzzle (3x3)") {
		t.Error("expected game header in output")
	}
}

func TestPlayGame_WinRecordsScore(t *testing.T) {
	app, out := testApp(t, 3, "down", "q")

	board := &engine.Board{
		Size: 3,
		Tiles: [][]int{
			{1, 2, 3},
			{4, 5, 0},
			{7, 8, 6},
		},
		Blank: engine.Position{Row: 1, Col: 2},
	}
	eng, err := engine.NewEngineFromBoard(board)
	if err != nil {
		t.Fatalf("NewEngineFromBoard failed: %v", err)
	}

	again, err := app.playGame(eng)
	if err != nil {
		t.Fatalf("playGame failed: %v", err)
	}
	if again {
		t.Error("expected quit after the win screen")
	}
	if !strings.Contains(out.String(), "CONGRATULATIONS") {
		t.Error("expected win banner")
	}
	if !strings.Contains(out.String(), "HIGH SCORES") {
		t.Error("expected high score listing")
	}

	entries, err := app.store.Get(3)
	if err != nil {
		t.Fatalf("score lookup failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Moves != 1 {
		t.Errorf("expected one recorded score with 1 move, got %+v", entries)
	}
}

func TestPlayGame_HintMessage(t *testing.T) {
	app, out := testApp(t, 3, "hint", "down", "q")

	board := &engine.Board{
		Size: 3,
		Tiles: [][]int{
			{1, 2, 3},
			{4, 5, 0},
			{7, 8, 6},
		},
		Blank: engine.Position{Row: 1, Col: 2},
	}
	eng, err := engine.NewEngineFromBoard(board)
	if err != nil {
		t.Fatalf("NewEngineFromBoard failed: %v", err)
	}

	if _, err := app.playGame(eng); err != nil {
		t.Fatalf("playGame failed: %v", err)
	}
	if !strings.Contains(out.String(), "Hint: move down") {
		t.Error("expected hint message in output")
	}
}
