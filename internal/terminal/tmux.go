package terminal

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/wtsdev/wts/internal/cmd"
)

// tmuxProvider opens worktrees inside the user's running tmux session.
type tmuxProvider struct{}

func newTmuxProvider() *tmuxProvider {
	return &tmuxProvider{}
}

func (t *tmuxProvider) Name() string  { return "tmux" }
func (t *tmuxProvider) Priority() int { return PriorityMultiplexer }

func (t *tmuxProvider) SupportsMode(mode Mode) bool {
	return mode == ModeTab || mode == ModeWindow
}

// IsAvailable requires both the binary and a running session: the $TMUX
// marker is only set inside one.
func (t *tmuxProvider) IsAvailable() bool {
	if os.Getenv("TMUX") == "" {
		return false
	}
	_, err := exec.LookPath("tmux")
	return err == nil
}

func (t *tmuxProvider) Open(ctx context.Context, path string, mode Mode, initCommand string) error {
	shellCmd := shellCommand(initCommand)

	switch mode {
	case ModeTab:
		args := []string{"new-window", "-c", path}
		if shellCmd != "" {
			args = append(args, "sh", "-c", shellCmd)
		}
		if err := cmd.RunContext(ctx, "", "tmux", args...); err != nil {
			return fmt.Errorf("tmux failed: %w", err)
		}
		return nil

	case ModeWindow:
		// new-session refuses to run nested, so create the session
		// detached and switch the client to it.
		name := fmt.Sprintf("wts-%s", filepath.Base(path))
		args := []string{"new-session", "-d", "-s", name, "-c", path}
		if shellCmd != "" {
			args = append(args, "sh", "-c", shellCmd)
		}
		if err := cmd.RunContext(ctx, "", "tmux", args...); err != nil {
			return fmt.Errorf("tmux failed: %w", err)
		}
		if err := cmd.RunContext(ctx, "", "tmux", "switch-client", "-t", name); err != nil {
			return fmt.Errorf("tmux failed: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("tmux does not support mode %q", mode)
	}
}
