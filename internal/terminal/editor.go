package terminal

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/wtsdev/wts/internal/cmd"
)

// editorProvider opens a worktree in a GUI editor such as VS Code or
// Cursor. Both editors share the same `<bin> <path>` invocation.
type editorProvider struct {
	name string
	bin  string
	mode Mode
}

func newEditorProvider(name, bin string, mode Mode) *editorProvider {
	return &editorProvider{name: name, bin: bin, mode: mode}
}

func (p *editorProvider) Name() string  { return p.name }
func (p *editorProvider) Priority() int { return PriorityTerminal }

func (p *editorProvider) SupportsMode(mode Mode) bool {
	return mode == p.mode
}

func (p *editorProvider) IsAvailable() bool {
	_, err := exec.LookPath(p.bin)
	return err == nil
}

func (p *editorProvider) Open(ctx context.Context, path string, mode Mode, initCommand string) error {
	if mode != p.mode {
		return fmt.Errorf("%s does not support mode %q", p.name, mode)
	}
	// Editors have no shell to run initCommand in; it is dropped here and
	// the caller is expected to have warned about it.
	if err := cmd.RunContext(ctx, "", p.bin, path); err != nil {
		return fmt.Errorf("%s failed: %w", p.name, err)
	}
	return nil
}
