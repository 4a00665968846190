package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNotARepository indicates the working directory is not inside a git repository
var ErrNotARepository = fmt.Errorf("not inside a git repository")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// FindRepoRoot returns the primary repository root for the given path.
// When path is inside a linked worktree, the primary worktree's root is
// returned, so all repository-level operations target the main checkout.
func FindRepoRoot(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", ErrNotARepository
	}
	toplevel := strings.TrimSpace(string(out))

	gitPath := filepath.Join(toplevel, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return "", ErrNotARepository
	}
	if info.IsDir() {
		return toplevel, nil
	}
	return mainRepoFromWorktree(toplevel)
}

// mainRepoFromWorktree extracts the primary repo path from a linked
// worktree's .git file ("gitdir: /repo/.git/worktrees/name").
func mainRepoFromWorktree(worktreePath string) (string, error) {
	content, err := os.ReadFile(filepath.Join(worktreePath, ".git"))
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	line := strings.TrimSpace(string(content))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	if !strings.HasPrefix(line, "gitdir: ") {
		return "", fmt.Errorf("invalid .git file format: expected 'gitdir: <path>'")
	}

	gitdir := strings.TrimPrefix(line, "gitdir: ")
	if gitdir == "" {
		return "", fmt.Errorf("invalid .git file format: empty gitdir path")
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(worktreePath, gitdir)
	}
	gitdir = filepath.Clean(gitdir)

	// gitdir is like /path/to/repo/.git/worktrees/name; walk up to .git
	// and return its parent.
	dir := gitdir
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find main repo path from gitdir: %s", gitdir)
		}
		if filepath.Base(dir) == ".git" {
			return parent, nil
		}
		dir = parent
	}
}
