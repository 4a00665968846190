package terminal

import (
	"context"
	"fmt"
	"io"
)

// echoProvider prints the worktree path instead of opening anything.
// It is the scripting escape hatch: `cd $(wts switch x --terminal echo)`.
type echoProvider struct {
	out io.Writer
}

func newEchoProvider(out io.Writer) *echoProvider {
	return &echoProvider{out: out}
}

func (p *echoProvider) Name() string  { return "echo" }
func (p *echoProvider) Priority() int { return PriorityNoop }

func (p *echoProvider) SupportsMode(mode Mode) bool {
	return mode == ModeEcho
}

func (p *echoProvider) IsAvailable() bool { return true }

func (p *echoProvider) Open(ctx context.Context, path string, mode Mode, initCommand string) error {
	if mode != ModeEcho {
		return fmt.Errorf("echo does not support mode %q", mode)
	}
	_, err := fmt.Fprintln(p.out, path)
	return err
}
