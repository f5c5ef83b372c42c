package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Action is a normalized input command.
type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionLeft    Action = "left"
	ActionRight   Action = "right"
	ActionRestart Action = "restart"
	ActionHint    Action = "hint"
	ActionSolve   Action = "solve"
	ActionQuit    Action = "quit"
	ActionNone    Action = ""
)

// keyMap translates single characters to actions. WASD mirrors the arrow
// keys; both name the direction the blank moves, so a key selects the
// tile on that side of the blank.
var keyMap = map[byte]Action{
	'w': ActionUp, 'W': ActionUp,
	's': ActionDown, 'S': ActionDown,
	'a': ActionLeft, 'A': ActionLeft,
	'd': ActionRight, 'D': ActionRight,
	'r': ActionRestart, 'R': ActionRestart,
	'n': ActionHint, 'N': ActionHint,
	'v': ActionSolve, 'V': ActionSolve,
	'q': ActionQuit, 'Q': ActionQuit,
	0x03: ActionQuit, // Ctrl-C
}

// arrowMap translates the final byte of an ESC [ X sequence.
var arrowMap = map[byte]Action{
	'A': ActionUp,
	'B': ActionDown,
	'C': ActionRight,
	'D': ActionLeft,
}

// inputReader reads normalized actions from a terminal or a line stream.
type inputReader struct {
	file    *os.File
	rawMode bool
	scanner *bufio.Scanner
}

// newInputReader picks raw single-keypress mode when the input is a
// terminal, and line mode otherwise.
func newInputReader(file *os.File) *inputReader {
	if term.IsTerminal(int(file.Fd())) {
		return &inputReader{file: file, rawMode: true}
	}
	return newLineInputReader(file)
}

// newLineInputReader always reads one command per line, even on a
// terminal.
func newLineInputReader(file *os.File) *inputReader {
	return &inputReader{file: file, scanner: bufio.NewScanner(file)}
}

// ReadAction blocks until the next recognized command. Unrecognized keys
// return ActionNone so the caller can redraw and wait again.
func (r *inputReader) ReadAction() (Action, error) {
	if r.rawMode {
		return r.readRaw()
	}
	return r.readLine()
}

// readRaw reads one keypress with the terminal in raw mode.
func (r *inputReader) readRaw() (Action, error) {
	fd := int(r.file.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return ActionNone, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	if _, err := r.file.Read(buf); err != nil {
		return ActionNone, err
	}

	// Arrow keys arrive as ESC [ A-D. A bare Escape means quit.
	if buf[0] == 0x1b {
		seq := make([]byte, 2)
		n, err := r.file.Read(seq)
		if err != nil || n < 2 || seq[0] != '[' {
			return ActionQuit, nil
		}
		return arrowMap[seq[1]], nil
	}

	return keyMap[buf[0]], nil
}

// readLine reads one command per line for non-terminal input.
func (r *inputReader) readLine() (Action, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return ActionNone, err
		}
		return ActionQuit, io.EOF
	}

	line := strings.TrimSpace(strings.ToLower(r.scanner.Text()))
	switch line {
	case "up", "w":
		return ActionUp, nil
	case "down", "s":
		return ActionDown, nil
	case "left", "a":
		return ActionLeft, nil
	case "right", "d":
		return ActionRight, nil
	case "restart", "r":
		return ActionRestart, nil
	case "hint", "n":
		return ActionHint, nil
	case "solve", "v":
		return ActionSolve, nil
	case "quit", "q", "exit":
		return ActionQuit, nil
	default:
		return ActionNone, nil
	}
}
