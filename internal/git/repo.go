package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// RepoName extracts the repository name from the origin URL, falling back
// to the repo folder name when no origin remote is configured.
func RepoName(ctx context.Context, repoPath string) string {
	out, err := outputGit(ctx, repoPath, "remote", "get-url", "origin")
	if err != nil {
		return filepath.Base(repoPath)
	}

	url := strings.TrimSuffix(strings.TrimSpace(string(out)), ".git")
	parts := strings.Split(url, "/")
	name := parts[len(parts)-1]
	if name == "" {
		return filepath.Base(repoPath)
	}
	return name
}

// DefaultBranch returns the repository's default branch name. The probe
// order is fixed: local main, local master, the remote HEAD's branch, then
// the first local branch.
func DefaultBranch(ctx context.Context, repoPath string) string {
	if BranchExists(ctx, repoPath, "main") {
		return "main"
	}
	if BranchExists(ctx, repoPath, "master") {
		return "master"
	}

	out, err := outputGit(ctx, repoPath, "symbolic-ref", "refs/remotes/origin/HEAD")
	if err == nil {
		ref := strings.TrimSpace(string(out))
		if parts := strings.Split(ref, "/"); len(parts) > 0 {
			if name := parts[len(parts)-1]; name != "" {
				return name
			}
		}
	}

	out, err = outputGit(ctx, repoPath, "for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if branch := strings.TrimSpace(line); branch != "" {
				return branch
			}
		}
	}

	return "main"
}

// CurrentBranch returns the branch checked out at path.
// Returns "(detached)" for detached HEAD state.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return DetachedMarker, nil
	}
	return branch, nil
}

// BranchExists checks if a local branch exists.
func BranchExists(ctx context.Context, repoPath, branch string) bool {
	return runGit(ctx, repoPath, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// RemoteBranchExists checks if a same-named branch exists on origin.
func RemoteBranchExists(ctx context.Context, repoPath, branch string) bool {
	return runGit(ctx, repoPath, "rev-parse", "--verify", "--quiet", "refs/remotes/origin/"+branch) == nil
}

// HasUncommittedChanges returns true if the working tree or index at path
// differs from HEAD. Errors are treated as clean; the cleanup gate relies
// on the status resolver's own fail-safe instead.
func HasUncommittedChanges(ctx context.Context, path string) bool {
	out, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// DeleteBranch deletes a local branch.
func DeleteBranch(ctx context.Context, repoPath, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if err := runGit(ctx, repoPath, "branch", flag, branch); err != nil {
		return fmt.Errorf("failed to delete branch: %v", err)
	}
	return nil
}
