//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/wtsdev/wts/internal/log"
	"github.com/wtsdev/wts/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// gitIn runs a git command inside dir and fails the test on error.
func gitIn(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo with an initial commit on main in
// dir/name. Returns the absolute path with symlinks resolved.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	gitIn(t, repoPath, "init", "-b", "main")
	gitIn(t, repoPath, "config", "user.email", "test@test.com")
	gitIn(t, repoPath, "config", "user.name", "Test User")
	gitIn(t, repoPath, "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	gitIn(t, repoPath, "add", "README.md")
	gitIn(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// testContext builds a context with a quiet logger and a printer that
// collects stdout into the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &buf)
	return ctx, &buf
}
