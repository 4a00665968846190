package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/wtsdev/wts/internal/cleanup"
	"github.com/wtsdev/wts/internal/git"
	"github.com/wtsdev/wts/internal/log"
	"github.com/wtsdev/wts/internal/output"
	"github.com/wtsdev/wts/internal/ui"
)

type cleanupOptions struct {
	mode    cleanup.Mode
	dryRun  bool
	force   bool
	yes     bool
	workDir string
}

func runCleanup(ctx context.Context, opts cleanupOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	repoRoot, err := git.FindRepoRoot(ctx, opts.workDir)
	if err != nil {
		return err
	}

	worktrees, err := git.ListWorktrees(ctx, repoRoot)
	if err != nil {
		return err
	}

	// The status scan walks every worktree and can take a moment on
	// large repos.
	var sp *ui.Spinner
	if isatty.IsTerminal(os.Stdout.Fd()) {
		sp = ui.NewSpinner("Checking worktree status...")
		sp.Start()
	}
	candidates := resolveCandidates(ctx, repoRoot, worktrees)
	if sp != nil {
		sp.Stop()
	}
	if len(candidates) == 0 {
		out.Println("No worktrees to clean up")
		return nil
	}

	pipeline := cleanup.NewPipeline(repoRoot, opts.mode, opts.force)
	if opts.mode == cleanup.ModeInteractive {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		pipeline.Pick = pickCandidates
	}

	res, err := pipeline.Filter(ctx, candidates)
	if err != nil {
		return err
	}

	for _, skip := range res.Skipped {
		l.Printf("Skipping %s: %s\n", skip.Candidate.Worktree.Branch, skip.Reason)
	}

	if len(res.Selected) == 0 {
		out.Println("Nothing to clean up")
		return nil
	}

	out.Println("Worktrees to remove:")
	for _, c := range res.Selected {
		out.Printf("  %s  %s\n", c.Worktree.Branch, c.Worktree.Path)
	}

	if opts.dryRun {
		out.Println("Dry run: nothing removed")
		return nil
	}

	// One confirmation for the whole batch.
	if !opts.yes {
		confirm, err := ui.Confirm(fmt.Sprintf("Remove %d worktree(s)?", len(res.Selected)))
		if err != nil {
			return err
		}
		if !confirm.Confirmed {
			out.Println("Aborted.")
			return nil
		}
	}

	removed, deleted := 0, 0
	for _, c := range res.Selected {
		if err := git.RemoveWorktree(ctx, repoRoot, c.Worktree.Path, opts.force); err != nil {
			l.Warnf("failed to remove %s: %v\n", c.Worktree.Path, err)
			continue
		}
		removed++

		branch := c.Worktree.Branch
		if branch == "" || branch == git.DetachedMarker {
			continue
		}
		if git.BranchExists(ctx, repoRoot, branch) {
			if err := git.DeleteBranch(ctx, repoRoot, branch, opts.force); err != nil {
				l.Warnf("failed to delete branch %s: %v\n", branch, err)
				continue
			}
			deleted++
		}
	}

	if err := git.PruneWorktrees(ctx, repoRoot); err != nil {
		l.Warnf("worktree prune failed: %v\n", err)
	}

	out.Printf("Removed %d worktree(s), deleted %d branch(es)\n", removed, deleted)
	return nil
}

// resolveCandidates pairs each removable worktree with its branch
// status. The primary worktree and the one the command runs from are
// never candidates.
func resolveCandidates(ctx context.Context, repoRoot string, worktrees []git.Worktree) []cleanup.Candidate {
	resolver := git.NewResolver(repoRoot)

	var candidates []cleanup.Candidate
	for _, wt := range worktrees {
		if wt.IsPrimary || wt.IsCurrent {
			continue
		}
		candidates = append(candidates, cleanup.Candidate{
			Worktree: wt,
			Status:   resolver.Resolve(ctx, wt),
		})
	}
	return candidates
}

// pickCandidates adapts the ui picker to the pipeline's interactive
// hook.
func pickCandidates(ctx context.Context, candidates []cleanup.Candidate) ([]cleanup.Candidate, error) {
	items := make([]ui.PickItem, len(candidates))
	for i, c := range candidates {
		items[i] = ui.PickItem{
			Branch:   c.Worktree.Branch,
			Path:     c.Worktree.Path,
			Dirty:    c.Status.HasUncommittedChanges,
			Unpushed: c.Status.HasUnpushedCommits,
		}
	}

	res, err := ui.Pick(items)
	if err != nil {
		return nil, err
	}
	if res.Cancelled {
		return nil, nil
	}

	picked := make([]cleanup.Candidate, 0, len(res.Indices))
	for _, idx := range res.Indices {
		picked = append(picked, candidates[idx])
	}
	return picked, nil
}
