package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveIdenticalBranch(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	// Branch at exactly the main tip.
	if err := runGit(ctx, repoPath, "branch", "feature-same"); err != nil {
		t.Fatalf("failed to create branch: %v", err)
	}

	r := NewResolver(repoPath)
	status := r.Resolve(ctx, Worktree{Branch: "feature-same", Path: repoPath})

	if !status.IsIdentical {
		t.Error("IsIdentical should be true for branch at default tip")
	}
	if !status.IsMerged {
		t.Error("IsMerged should be true whenever IsIdentical is true")
	}
	if status.HasRemote {
		t.Error("HasRemote should be false without an upstream")
	}
}

func TestResolveMergedBranch(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	tmpDir := filepath.Dir(repoPath)
	ctx := context.Background()

	// Commit on a branch in its own worktree, then merge it into main.
	wtPath := filepath.Join(tmpDir, "wt-merged")
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", "feature-merged", wtPath); err != nil {
		t.Fatalf("failed to create worktree: %v", err)
	}
	commitFile(t, wtPath, "feature.txt", "feature\n", "add feature")
	if err := runGit(ctx, repoPath, "merge", "--no-ff", "feature-merged", "-m", "merge feature"); err != nil {
		t.Fatalf("git merge failed: %v", err)
	}

	r := NewResolver(repoPath)
	status := r.Resolve(ctx, Worktree{Branch: "feature-merged", Path: wtPath})

	if !status.IsMerged {
		t.Error("IsMerged should be true after merging into main")
	}
	if status.IsIdentical {
		t.Error("IsIdentical should be false for a merged side branch")
	}
}

func TestResolveUnmergedBranch(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	tmpDir := filepath.Dir(repoPath)
	ctx := context.Background()

	wtPath := filepath.Join(tmpDir, "wt-unmerged")
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", "feature-wip", wtPath); err != nil {
		t.Fatalf("failed to create worktree: %v", err)
	}
	commitFile(t, wtPath, "wip.txt", "wip\n", "work in progress")

	r := NewResolver(repoPath)
	status := r.Resolve(ctx, Worktree{Branch: "feature-wip", Path: wtPath})

	if status.IsMerged {
		t.Error("IsMerged should be false for a branch with unmerged commits")
	}
	if status.IsIdentical {
		t.Error("IsIdentical should be false for a branch ahead of main")
	}
}

func TestResolveMissingBranchAllFalse(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	r := NewResolver(repoPath)
	status := r.Resolve(ctx, Worktree{Branch: "deleted-out-of-band", Path: repoPath})

	if status.HasRemote || status.IsMerged || status.IsIdentical ||
		status.HasUncommittedChanges || status.HasUnpushedCommits {
		t.Errorf("status for missing branch should be all false, got %+v", status)
	}
}

func TestResolveDetachedAllFalse(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	r := NewResolver(repoPath)
	status := r.Resolve(ctx, Worktree{Branch: DetachedMarker, Path: repoPath})

	if status.HasRemote || status.IsMerged || status.IsIdentical {
		t.Errorf("detached status should be all false, got %+v", status)
	}
}

func TestResolveBadRepoAllFalse(t *testing.T) {
	t.Parallel()

	r := NewResolver(filepath.Join(t.TempDir(), "nope"))
	status := r.Resolve(context.Background(), Worktree{Branch: "main", Path: "/nonexistent"})

	if status.HasRemote || status.IsMerged || status.IsIdentical ||
		status.HasUncommittedChanges || status.HasUnpushedCommits {
		t.Errorf("status without a repository should be all false, got %+v", status)
	}
}

func TestResolveUncommittedChangesInspectsWorktreePath(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	tmpDir := filepath.Dir(repoPath)
	ctx := context.Background()

	wtPath := filepath.Join(tmpDir, "wt-dirty-status")
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", "feature-dirty", wtPath); err != nil {
		t.Fatalf("failed to create worktree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(wtPath, "scratch.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r := NewResolver(repoPath)

	dirty := r.Resolve(ctx, Worktree{Branch: "feature-dirty", Path: wtPath})
	if !dirty.HasUncommittedChanges {
		t.Error("dirty worktree should report uncommitted changes")
	}

	// The primary worktree is clean; the check must not leak across paths.
	clean := r.Resolve(ctx, Worktree{Branch: "main", Path: repoPath})
	if clean.HasUncommittedChanges {
		t.Error("clean primary worktree should not report uncommitted changes")
	}
}

func TestResolveRemoteAndUnpushed(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupTestRepoWithOrigin(t)
	tmpDir := filepath.Dir(repoPath)
	ctx := context.Background()

	wtPath := filepath.Join(tmpDir, "wt-pushed")
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", "feature-pushed", wtPath); err != nil {
		t.Fatalf("failed to create worktree: %v", err)
	}
	if err := runGit(ctx, wtPath, "push", "-u", "origin", "feature-pushed"); err != nil {
		t.Fatalf("git push failed: %v", err)
	}

	r := NewResolver(repoPath)

	pushed := r.Resolve(ctx, Worktree{Branch: "feature-pushed", Path: wtPath})
	if !pushed.HasRemote {
		t.Error("HasRemote should be true after push -u")
	}
	if pushed.HasUnpushedCommits {
		t.Error("HasUnpushedCommits should be false when tip is pushed")
	}

	// A local commit on top of the pushed tip is unpushed. Reopen the
	// resolver so the new commit is visible.
	commitFile(t, wtPath, "local.txt", "local\n", "local only")
	r = NewResolver(repoPath)

	unpushed := r.Resolve(ctx, Worktree{Branch: "feature-pushed", Path: wtPath})
	if !unpushed.HasUnpushedCommits {
		t.Error("HasUnpushedCommits should be true after a local-only commit")
	}
}

func TestResolveNoTrackingBranchMeansNoUnpushed(t *testing.T) {
	t.Parallel()

	repoPath := setupTestRepo(t)
	tmpDir := filepath.Dir(repoPath)
	ctx := context.Background()

	wtPath := filepath.Join(tmpDir, "wt-local-only")
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", "local-only", wtPath); err != nil {
		t.Fatalf("failed to create worktree: %v", err)
	}
	commitFile(t, wtPath, "only.txt", "only\n", "local commit")

	r := NewResolver(repoPath)
	status := r.Resolve(ctx, Worktree{Branch: "local-only", Path: wtPath})

	if status.HasRemote {
		t.Error("HasRemote should be false without an upstream")
	}
	if status.HasUnpushedCommits {
		t.Error("a branch with no tracking branch cannot have unpushed commits")
	}
}

func TestDefaultBranchPriority(t *testing.T) {
	t.Parallel()

	t.Run("prefers main", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		r := NewResolver(repoPath)
		if got := r.DefaultBranch(); got != "main" {
			t.Errorf("DefaultBranch() = %q, want main", got)
		}
	})

	t.Run("falls back to master", func(t *testing.T) {
		t.Parallel()
		tmp := t.TempDir()
		resolved, err := filepath.EvalSymlinks(tmp)
		if err != nil {
			t.Fatalf("failed to resolve symlinks: %v", err)
		}
		repoPath := filepath.Join(resolved, "repo")
		ctx := context.Background()
		if err := runGit(ctx, "", "init", "-b", "master", repoPath); err != nil {
			t.Fatalf("git init failed: %v", err)
		}
		configTestUser(t, repoPath)
		commitFile(t, repoPath, "README.md", "# test\n", "initial commit")

		r := NewResolver(repoPath)
		if got := r.DefaultBranch(); got != "master" {
			t.Errorf("DefaultBranch() = %q, want master", got)
		}
	})

	t.Run("first local branch when neither exists", func(t *testing.T) {
		t.Parallel()
		tmp := t.TempDir()
		resolved, err := filepath.EvalSymlinks(tmp)
		if err != nil {
			t.Fatalf("failed to resolve symlinks: %v", err)
		}
		repoPath := filepath.Join(resolved, "repo")
		ctx := context.Background()
		if err := runGit(ctx, "", "init", "-b", "trunk", repoPath); err != nil {
			t.Fatalf("git init failed: %v", err)
		}
		configTestUser(t, repoPath)
		commitFile(t, repoPath, "README.md", "# test\n", "initial commit")

		r := NewResolver(repoPath)
		if got := r.DefaultBranch(); got != "trunk" {
			t.Errorf("DefaultBranch() = %q, want trunk", got)
		}
	})
}
