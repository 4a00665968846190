package worktree

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home directory: %v", err)
	}

	t.Setenv("WTS_TEST_BASE", "/srv/worktrees")

	tests := []struct {
		name     string
		repoPath string
		repoName string
		branch   string
		format   string
		expected string
	}{
		{
			name:     "nested format",
			repoPath: "/home/user/repos/myrepo",
			repoName: "myrepo",
			branch:   "main",
			format:   "{branch}",
			expected: "/home/user/repos/myrepo/main",
		},
		{
			name:     "nested format with ./",
			repoPath: "/home/user/repos/myrepo",
			repoName: "myrepo",
			branch:   "main",
			format:   "./{branch}",
			expected: "/home/user/repos/myrepo/main",
		},
		{
			name:     "sibling format",
			repoPath: "/home/user/repos/myrepo",
			repoName: "myrepo",
			branch:   "feature",
			format:   "../{repo}-{branch}",
			expected: "/home/user/repos/myrepo-feature",
		},
		{
			name:     "home-relative format",
			repoPath: "/home/user/repos/myrepo",
			repoName: "myrepo",
			branch:   "feature",
			format:   "~/worktrees/{repo}-{branch}",
			expected: filepath.Join(home, "worktrees", "myrepo-feature"),
		},
		{
			name:     "absolute format",
			repoPath: "/home/user/repos/myrepo",
			repoName: "myrepo",
			branch:   "feature",
			format:   "/tmp/wts/{branch}",
			expected: "/tmp/wts/feature",
		},
		{
			name:     "environment variable",
			repoPath: "/home/user/repos/myrepo",
			repoName: "myrepo",
			branch:   "feature",
			format:   "$WTS_TEST_BASE/{repo}-{branch}",
			expected: "/srv/worktrees/myrepo-feature",
		},
		{
			name:     "branch with slash is flattened",
			repoPath: "/home/user/repos/myrepo",
			repoName: "myrepo",
			branch:   "feat/login",
			format:   "../{repo}-{branch}",
			expected: "/home/user/repos/myrepo-feat-login",
		},
		{
			name:     "empty format falls back to default",
			repoPath: "/home/user/repos/myrepo",
			repoName: "myrepo",
			branch:   "feature",
			format:   "",
			expected: "/home/user/repos/myrepo-feature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePath(tt.repoPath, tt.repoName, tt.branch, tt.format)
			if got != tt.expected {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.format, got, tt.expected)
			}
		})
	}
}
