package terminal

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// inplaceProvider replaces the current terminal's foreground process
// with a shell rooted in the worktree. The call blocks until the shell
// exits.
type inplaceProvider struct{}

func newInplaceProvider() *inplaceProvider {
	return &inplaceProvider{}
}

func (p *inplaceProvider) Name() string  { return "inplace" }
func (p *inplaceProvider) Priority() int { return PriorityNoop }

func (p *inplaceProvider) SupportsMode(mode Mode) bool {
	return mode == ModeInplace
}

func (p *inplaceProvider) IsAvailable() bool { return true }

func (p *inplaceProvider) Open(ctx context.Context, path string, mode Mode, initCommand string) error {
	if mode != ModeInplace {
		return fmt.Errorf("inplace does not support mode %q", mode)
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	var c *exec.Cmd
	if shellCmd := shellCommand(initCommand); shellCmd != "" {
		c = exec.CommandContext(ctx, shell, "-c", shellCmd)
	} else {
		c = exec.CommandContext(ctx, shell)
	}
	c.Dir = path
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return fmt.Errorf("inplace shell failed: %w", err)
	}
	return nil
}
