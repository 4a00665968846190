package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a real git repository with one commit on main.
// Returns the repository path (symlinks resolved, since macOS temp dirs
// are symlinked).
func setupTestRepo(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmp)
	if err != nil {
		t.Fatalf("failed to resolve symlinks: %v", err)
	}

	repoPath := filepath.Join(resolved, "repo")
	ctx := context.Background()

	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("git init failed: %v", err)
	}
	configTestUser(t, repoPath)
	commitFile(t, repoPath, "README.md", "# test\n", "initial commit")

	return repoPath
}

// setupTestRepoWithOrigin additionally creates a bare origin remote with
// main pushed and origin/HEAD configured.
func setupTestRepoWithOrigin(t *testing.T) (repoPath, originPath string) {
	t.Helper()

	repoPath = setupTestRepo(t)
	originPath = filepath.Join(filepath.Dir(repoPath), "origin.git")
	ctx := context.Background()

	if err := runGit(ctx, "", "init", "--bare", "-b", "main", originPath); err != nil {
		t.Fatalf("git init --bare failed: %v", err)
	}
	if err := runGit(ctx, repoPath, "remote", "add", "origin", originPath); err != nil {
		t.Fatalf("git remote add failed: %v", err)
	}
	if err := runGit(ctx, repoPath, "push", "-u", "origin", "main"); err != nil {
		t.Fatalf("git push failed: %v", err)
	}
	if err := runGit(ctx, repoPath, "remote", "set-head", "origin", "main"); err != nil {
		t.Fatalf("git remote set-head failed: %v", err)
	}

	return repoPath, originPath
}

func configTestUser(t *testing.T, repoPath string) {
	t.Helper()

	ctx := context.Background()
	if err := runGit(ctx, repoPath, "config", "user.email", "test@example.com"); err != nil {
		t.Fatalf("git config failed: %v", err)
	}
	if err := runGit(ctx, repoPath, "config", "user.name", "Test User"); err != nil {
		t.Fatalf("git config failed: %v", err)
	}
}

func commitFile(t *testing.T, repoPath, name, content, message string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	ctx := context.Background()
	if err := runGit(ctx, repoPath, "add", name); err != nil {
		t.Fatalf("git add failed: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", message); err != nil {
		t.Fatalf("git commit failed: %v", err)
	}
}
