// Package cleanup narrows the worktree list down to the set that is safe
// to remove under a given mode.
package cleanup

import (
	"fmt"
	"strings"
)

// Mode selects the cleanup filtering strategy.
type Mode string

const (
	// ModeAll considers every non-primary worktree.
	ModeAll Mode = "all"
	// ModeRemoteless keeps worktrees whose branch has no tracking remote.
	ModeRemoteless Mode = "remoteless"
	// ModeMerged keeps worktrees whose branch is merged into the default
	// branch.
	ModeMerged Mode = "merged"
	// ModeInteractive lets the user pick worktrees from a list.
	ModeInteractive Mode = "interactive"
	// ModeGitHub keeps worktrees whose branch has a merged or closed PR.
	ModeGitHub Mode = "github"
)

// Modes lists all valid cleanup modes.
var Modes = []Mode{ModeAll, ModeRemoteless, ModeMerged, ModeInteractive, ModeGitHub}

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return "", fmt.Errorf("unknown cleanup mode %q (valid: %s)", s, strings.Join(names, ", "))
}
