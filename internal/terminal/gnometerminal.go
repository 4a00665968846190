package terminal

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/wtsdev/wts/internal/cmd"
)

// gnomeTerminalProvider drives gnome-terminal on Linux desktops.
type gnomeTerminalProvider struct{}

func newGnomeTerminalProvider() *gnomeTerminalProvider {
	return &gnomeTerminalProvider{}
}

func (p *gnomeTerminalProvider) Name() string  { return "gnometerminal" }
func (p *gnomeTerminalProvider) Priority() int { return PriorityTerminal }

func (p *gnomeTerminalProvider) SupportsMode(mode Mode) bool {
	return mode == ModeTab || mode == ModeWindow
}

func (p *gnomeTerminalProvider) IsAvailable() bool {
	_, err := exec.LookPath("gnome-terminal")
	return err == nil
}

func (p *gnomeTerminalProvider) Open(ctx context.Context, path string, mode Mode, initCommand string) error {
	var args []string
	switch mode {
	case ModeTab:
		args = []string{"--tab", "--working-directory", path}
	case ModeWindow:
		args = []string{"--window", "--working-directory", path}
	default:
		return fmt.Errorf("gnometerminal does not support mode %q", mode)
	}

	if shellCmd := shellCommand(initCommand); shellCmd != "" {
		args = append(args, "--", "bash", "-c", shellCmd)
	}

	if err := cmd.RunContext(ctx, "", "gnome-terminal", args...); err != nil {
		return fmt.Errorf("gnometerminal failed: %w", err)
	}
	return nil
}
