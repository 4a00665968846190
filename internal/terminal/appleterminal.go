package terminal

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/wtsdev/wts/internal/cmd"
)

// appleTerminalProvider drives the stock macOS Terminal.app. It ranks
// below iTerm so it is only picked when iTerm is not installed.
type appleTerminalProvider struct{}

func newAppleTerminalProvider() *appleTerminalProvider {
	return &appleTerminalProvider{}
}

func (p *appleTerminalProvider) Name() string  { return "appleterminal" }
func (p *appleTerminalProvider) Priority() int { return PriorityFallbackApp }

func (p *appleTerminalProvider) SupportsMode(mode Mode) bool {
	return mode == ModeTab || mode == ModeWindow
}

func (p *appleTerminalProvider) IsAvailable() bool {
	return runtime.GOOS == "darwin"
}

func (p *appleTerminalProvider) Open(ctx context.Context, path string, mode Mode, initCommand string) error {
	if mode != ModeTab && mode != ModeWindow {
		return fmt.Errorf("appleterminal does not support mode %q", mode)
	}

	// Terminal.app has no scripting verb for tabs, so both modes open a
	// window.
	doText := fmt.Sprintf("cd %s", appleScriptQuote(path))
	if shellCmd := shellCommand(initCommand); shellCmd != "" {
		doText += "; " + shellCmd
	}
	script := fmt.Sprintf(`tell application "Terminal"
	do script %s
	activate
end tell`, appleScriptString(doText))

	if err := cmd.RunContext(ctx, "", "osascript", "-e", script); err != nil {
		return fmt.Errorf("appleterminal failed: %w", err)
	}
	return nil
}

// appleScriptQuote shell-quotes a path for use inside a generated shell
// command line.
func appleScriptQuote(path string) string {
	return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
}

// appleScriptString renders s as an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
