// Package hooks runs the user's configured shell snippets around
// worktree creation, with placeholder substitution.
//
// Three hook points exist:
//
//   - pre_create runs in the repository root before the worktree is made
//   - post_create runs in the new worktree and is waited on
//   - post_create_async runs in the new worktree and is not waited on
//
// Placeholders {path}, {branch} and {repo} are replaced with
// shell-quoted values before execution.
package hooks

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/wtsdev/wts/internal/log"
)

// Context holds the values substituted into hook commands.
type Context struct {
	Path   string // absolute worktree path
	Branch string // branch name
	Repo   string // repository name
}

// shellQuote escapes a value for safe use inside a shell command line.
// Single quotes preserve everything except single quotes themselves, so
// "it's" becomes 'it'\''s'.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// Substitute replaces {path}, {branch} and {repo} with shell-quoted
// values from hctx.
func Substitute(command string, hctx Context) string {
	replacements := map[string]string{
		"{path}":   shellQuote(hctx.Path),
		"{branch}": shellQuote(hctx.Branch),
		"{repo}":   shellQuote(hctx.Repo),
	}
	for placeholder, value := range replacements {
		command = strings.ReplaceAll(command, placeholder, value)
	}
	return command
}

// Run executes a hook command through `sh -c` in workDir and waits for
// it. An empty command is a no-op.
func Run(ctx context.Context, name, command, workDir string, hctx Context) error {
	if command == "" {
		return nil
	}

	logger := log.FromContext(ctx)
	expanded := Substitute(command, hctx)
	logger.Debugf("running %s hook: %s\n", name, expanded)

	c := exec.CommandContext(ctx, "sh", "-c", expanded)
	c.Dir = workDir
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		return fmt.Errorf("%s hook failed: %w", name, err)
	}
	return nil
}

// RunAsync starts a hook command and does not wait for it. The hook's
// exit status is invisible to the caller; a failure to even start is
// logged as a warning.
func RunAsync(ctx context.Context, name, command, workDir string, hctx Context) {
	if command == "" {
		return
	}

	logger := log.FromContext(ctx)
	expanded := Substitute(command, hctx)
	logger.Debugf("starting %s hook: %s\n", name, expanded)

	c := exec.Command("sh", "-c", expanded)
	c.Dir = workDir

	if err := c.Start(); err != nil {
		logger.Warnf("%s hook did not start: %v\n", name, err)
		return
	}
	// Reap the child in the background so it does not linger as a
	// zombie while the process is still running.
	go func() { _ = c.Wait() }()
}
