package terminal

import (
	"fmt"
	"strings"
)

// Mode selects how a worktree is opened.
type Mode string

const (
	// ModeTab opens a new tab in the active terminal.
	ModeTab Mode = "tab"
	// ModeWindow opens a new terminal window.
	ModeWindow Mode = "window"
	// ModeInplace starts a shell in the current terminal.
	ModeInplace Mode = "inplace"
	// ModeEcho prints the worktree path instead of opening anything.
	ModeEcho Mode = "echo"
	// ModeVSCode opens the worktree in VS Code.
	ModeVSCode Mode = "vscode"
	// ModeCursor opens the worktree in Cursor.
	ModeCursor Mode = "cursor"
)

// Modes lists all valid terminal modes.
var Modes = []Mode{ModeTab, ModeWindow, ModeInplace, ModeEcho, ModeVSCode, ModeCursor}

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown terminal mode %q (valid: %s)", s, modeList())
}

func modeList() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
