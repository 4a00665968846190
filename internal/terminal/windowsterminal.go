package terminal

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/wtsdev/wts/internal/cmd"
)

// windowsTerminalProvider drives Windows Terminal through wt.exe.
type windowsTerminalProvider struct{}

func newWindowsTerminalProvider() *windowsTerminalProvider {
	return &windowsTerminalProvider{}
}

func (p *windowsTerminalProvider) Name() string  { return "windowsterminal" }
func (p *windowsTerminalProvider) Priority() int { return PriorityTerminal }

func (p *windowsTerminalProvider) SupportsMode(mode Mode) bool {
	return mode == ModeTab || mode == ModeWindow
}

func (p *windowsTerminalProvider) IsAvailable() bool {
	_, err := exec.LookPath("wt.exe")
	return err == nil
}

func (p *windowsTerminalProvider) Open(ctx context.Context, path string, mode Mode, initCommand string) error {
	var args []string
	switch mode {
	case ModeTab:
		args = []string{"new-tab", "-d", path}
	case ModeWindow:
		args = []string{"-w", "new", "new-tab", "-d", path}
	default:
		return fmt.Errorf("windowsterminal does not support mode %q", mode)
	}

	if initCommand != "" {
		// wt.exe runs the trailing command line in the new pane.
		args = append(args, "cmd", "/k", initCommand)
	}

	if err := cmd.RunContext(ctx, "", "wt.exe", args...); err != nil {
		return fmt.Errorf("windowsterminal failed: %w", err)
	}
	return nil
}
