package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetachedMarker is the branch name reported for detached HEAD worktrees.
const DetachedMarker = "(detached)"

// Worktree describes one entry from git worktree list.
type Worktree struct {
	Branch    string
	Path      string
	IsCurrent bool // process cwd is inside this worktree
	IsPrimary bool // the repository's main checkout
}

// ListWorktrees returns all worktrees for a repository using
// git worktree list --porcelain. The primary worktree is always the first
// entry; IsCurrent is derived from the process working directory.
func ListWorktrees(ctx context.Context, repoPath string) ([]Worktree, error) {
	out, err := outputGit(ctx, repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %v", err)
	}

	cwd, _ := os.Getwd()
	cwd = normalizePath(cwd)

	var worktrees []Worktree
	var current Worktree

	for _, line := range strings.Split(string(out), "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			if current.Path != "" {
				worktrees = append(worktrees, current)
			}
			current = Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "branch refs/heads/"):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			current.Branch = DetachedMarker
		}
	}
	if current.Path != "" {
		worktrees = append(worktrees, current)
	}

	for i := range worktrees {
		worktrees[i].IsPrimary = i == 0
		worktrees[i].IsCurrent = cwd != "" && normalizePath(worktrees[i].Path) == cwd
	}

	return worktrees, nil
}

// FindWorktreeForBranch returns the worktree checked out to branch, or nil.
func FindWorktreeForBranch(ctx context.Context, repoPath, branch string) (*Worktree, error) {
	worktrees, err := ListWorktrees(ctx, repoPath)
	if err != nil {
		return nil, err
	}
	for i := range worktrees {
		if worktrees[i].Branch == branch {
			return &worktrees[i], nil
		}
	}
	return nil, nil
}

// AddWorktree attaches an existing local branch at path.
func AddWorktree(ctx context.Context, repoPath, path, branch string) error {
	if err := runGit(ctx, repoPath, "worktree", "add", path, branch); err != nil {
		return fmt.Errorf("failed to add worktree: %v", err)
	}
	return nil
}

// AddWorktreeNewBranch creates branch from startPoint and checks it out at
// path in one step.
func AddWorktreeNewBranch(ctx context.Context, repoPath, path, branch, startPoint string) error {
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", branch, path, startPoint); err != nil {
		return fmt.Errorf("failed to add worktree: %v", err)
	}
	return nil
}

// AddWorktreeTracking creates a local branch tracking origin/<branch> and
// checks it out at path.
func AddWorktreeTracking(ctx context.Context, repoPath, path, branch string) error {
	if err := runGit(ctx, repoPath, "worktree", "add", "--track", "-b", branch, path, "origin/"+branch); err != nil {
		return fmt.Errorf("failed to add worktree: %v", err)
	}
	return nil
}

// RemoveWorktree removes the worktree at path.
func RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	if err := runGit(ctx, repoPath, args...); err != nil {
		return fmt.Errorf("failed to remove worktree: %v", err)
	}
	return nil
}

// PruneWorktrees removes stale administrative worktree entries.
func PruneWorktrees(ctx context.Context, repoPath string) error {
	return runGit(ctx, repoPath, "worktree", "prune")
}

// normalizePath resolves symlinks and cleans a path for comparison.
// macOS temp dirs are symlinked, so raw string comparison is unreliable.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return filepath.Clean(resolved)
	}
	return filepath.Clean(path)
}
