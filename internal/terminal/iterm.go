package terminal

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/wtsdev/wts/internal/cmd"
)

// itermProvider drives iTerm2 through AppleScript.
type itermProvider struct{}

func newITermProvider() *itermProvider {
	return &itermProvider{}
}

func (p *itermProvider) Name() string  { return "iterm" }
func (p *itermProvider) Priority() int { return PriorityTerminal }

func (p *itermProvider) SupportsMode(mode Mode) bool {
	return mode == ModeTab || mode == ModeWindow
}

func (p *itermProvider) IsAvailable() bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	out, err := exec.Command("osascript", "-e", `id of application "iTerm2"`).Output()
	return err == nil && len(out) > 0
}

func (p *itermProvider) Open(ctx context.Context, path string, mode Mode, initCommand string) error {
	writeText := fmt.Sprintf("cd %s", appleScriptQuote(path))
	if shellCmd := shellCommand(initCommand); shellCmd != "" {
		writeText += "; " + shellCmd
	}

	var script string
	switch mode {
	case ModeTab:
		script = fmt.Sprintf(`tell application "iTerm2"
	tell current window
		create tab with default profile
		tell current session to write text %s
	end tell
	activate
end tell`, appleScriptString(writeText))
	case ModeWindow:
		script = fmt.Sprintf(`tell application "iTerm2"
	create window with default profile
	tell current session of current window to write text %s
	activate
end tell`, appleScriptString(writeText))
	default:
		return fmt.Errorf("iterm does not support mode %q", mode)
	}

	if err := cmd.RunContext(ctx, "", "osascript", "-e", script); err != nil {
		return fmt.Errorf("iterm failed: %w", err)
	}
	return nil
}
