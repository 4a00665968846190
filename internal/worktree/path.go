// Package worktree computes where new worktrees live on disk.
package worktree

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFormat is the path template used when the config does not set
// one: a sibling directory next to the repository.
const DefaultFormat = "../{repo}-{branch}"

// ResolvePath expands a worktree path template.
// Supports:
//   - "{branch}" or "./{branch}" = nested inside the repo
//   - "../{repo}-{branch}" = sibling to the repo
//   - "~/worktrees/{repo}-{branch}" = centralized folder
//   - "$WORKTREES/{branch}" = environment variables
//   - "/absolute/{repo}-{branch}" = absolute path
func ResolvePath(repoPath, repoName, branch, format string) string {
	if format == "" {
		format = DefaultFormat
	}

	// Branch names may contain slashes; flatten them so one worktree
	// maps to one directory.
	safeBranch := strings.ReplaceAll(branch, "/", "-")

	path := strings.ReplaceAll(format, "{repo}", repoName)
	path = strings.ReplaceAll(path, "{branch}", safeBranch)
	path = os.ExpandEnv(path)

	switch {
	case strings.HasPrefix(path, "../"):
		return filepath.Join(filepath.Dir(repoPath), path[3:])

	case strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			// Keep the ~ prefix so error messages show what was asked
			// for.
			return path
		}
		return filepath.Join(home, path[2:])

	case filepath.IsAbs(path):
		return filepath.Clean(path)

	default:
		path = strings.TrimPrefix(path, "./")
		return filepath.Join(repoPath, path)
	}
}
