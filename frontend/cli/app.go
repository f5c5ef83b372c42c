package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dmateus/slidepuzzle/game/engine"
	"github.com/dmateus/slidepuzzle/game/scores"
)

// solveStepDelay paces the auto-solver so the animation is watchable.
const solveStepDelay = 120 * time.Millisecond

// App is the interactive terminal game.
type App struct {
	size  int
	store scores.Store
	input *inputReader
	out   io.Writer
}

// NewApp creates a terminal game reading from stdin and writing to stdout.
// Single-keypress input is used when stdin is a terminal.
func NewApp(size int, store scores.Store) *App {
	return &App{
		size:  size,
		store: store,
		input: newInputReader(os.Stdin),
		out:   os.Stdout,
	}
}

// NewLineApp creates a game that reads one command per line regardless
// of the terminal, for scripting and terminals without raw mode.
func NewLineApp(size int, store scores.Store) *App {
	return &App{
		size:  size,
		store: store,
		input: newLineInputReader(os.Stdin),
		out:   os.Stdout,
	}
}

// Run plays games until the user quits.
func (a *App) Run() error {
	for {
		eng, err := engine.NewEngine(a.size)
		if err != nil {
			return err
		}

		again, err := a.playGame(eng)
		if err != nil {
			return err
		}
		if !again {
			a.clear()
			fmt.Fprintln(a.out, "Thanks for playing!")
			return nil
		}
	}
}

// playGame runs one game to completion or quit. It reports whether the
// user wants another round.
func (a *App) playGame(eng *engine.GameEngine) (bool, error) {
	message := ""

	for !eng.IsWon() {
		a.renderGame(eng, message)
		message = ""

		action, err := a.input.ReadAction()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}

		switch action {
		case ActionUp, ActionDown, ActionLeft, ActionRight:
			eng.Move(engine.Direction(action))
		case ActionRestart:
			if err := eng.Restart(); err != nil {
				return false, err
			}
		case ActionHint:
			if direction, ok := eng.Hint(); ok {
				message = fmt.Sprintf("Hint: move %s", direction)
			}
		case ActionSolve:
			a.autoSolve(eng)
		case ActionQuit:
			return false, nil
		}
	}

	return a.finishGame(eng)
}

// autoSolve plays the computed solution to the end.
func (a *App) autoSolve(eng *engine.GameEngine) {
	for !eng.IsWon() {
		direction, ok := eng.Hint()
		if !ok {
			return
		}
		eng.Move(direction)
		a.renderGame(eng, "Solving...")
		time.Sleep(solveStepDelay)
	}
}

// finishGame records the score, shows the win screen and the rankings,
// then waits for restart or quit.
func (a *App) finishGame(eng *engine.GameEngine) (bool, error) {
	moves := eng.State().Moves
	elapsed := eng.State().Elapsed()

	a.renderWin(eng)

	if err := a.store.Add(a.size, scores.NewEntry(moves, elapsed)); err != nil {
		log.Printf("Warning: high score could not be saved: %v", err)
	}
	a.renderHighScores()

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "  Press R to play again, Q to quit.")
	for {
		action, err := a.input.ReadAction()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, err
		}
		switch action {
		case ActionRestart:
			return true, nil
		case ActionQuit:
			return false, nil
		}
	}
}

// Rendering

func (a *App) clear() {
	fmt.Fprint(a.out, "\033[2J\033[H")
}

func (a *App) renderGame(eng *engine.GameEngine, message string) {
	a.clear()
	fmt.Fprintf(a.out, "=== Sliding Puzzle (%dx%d) ===\n\n", a.size, a.size)
	fmt.Fprintln(a.out, renderBoard(eng.Board()))
	fmt.Fprintf(a.out, "\n  Moves: %d  |  Time: %s\n\n", eng.State().Moves, formatTime(eng.State().Elapsed()))
	fmt.Fprintln(a.out, "  WASD / Arrows: move blank  |  N: hint  |  V: solve  |  R: restart  |  Q: quit")
	if message != "" {
		fmt.Fprintf(a.out, "\n  %s\n", message)
	}
}

func (a *App) renderWin(eng *engine.GameEngine) {
	a.clear()
	fmt.Fprintf(a.out, "=== Sliding Puzzle (%dx%d) ===\n\n", a.size, a.size)
	fmt.Fprintln(a.out, renderBoard(eng.Board()))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "  *** CONGRATULATIONS! You solved it! ***")
	fmt.Fprintf(a.out, "\n  Moves: %d  |  Time: %s\n", eng.State().Moves, formatTime(eng.State().Elapsed()))
}

func (a *App) renderHighScores() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== HIGH SCORES ===")

	sizes, err := a.store.Sizes()
	if err != nil || len(sizes) == 0 {
		fmt.Fprintln(a.out, "  No high scores yet.")
		return
	}

	for _, size := range sizes {
		entries, err := a.store.Get(size)
		if err != nil {
			continue
		}
		fmt.Fprintf(a.out, "\n  --- %dx%d ---\n", size, size)
		for i, e := range entries {
			if i >= 10 {
				break
			}
			fmt.Fprintf(a.out, "  %2d. %4d moves  %7.1fs  (%s)\n", i+1, e.Moves, e.Time, e.Date)
		}
	}
}

// renderBoard draws the board as a bordered ASCII grid with the blank
// left empty.
func renderBoard(b *engine.Board) string {
	width := len(fmt.Sprint(b.Size*b.Size - 1))
	cellWidth := width + 2
	sep := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", b.Size)

	var sb strings.Builder
	sb.WriteString(sep)
	for _, row := range b.Tiles {
		sb.WriteString("\n|")
		for _, val := range row {
			if val == engine.Blank {
				sb.WriteString(strings.Repeat(" ", cellWidth))
			} else {
				fmt.Fprintf(&sb, " %*d ", width, val)
			}
			sb.WriteString("|")
		}
		sb.WriteString("\n")
		sb.WriteString(sep)
	}
	return sb.String()
}

// formatTime renders a duration as m:ss, or plain seconds under a minute.
func formatTime(d time.Duration) string {
	total := int(d.Seconds())
	m, s := total/60, total%60
	if m > 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
