package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wtsdev/wts/internal/config"
	"github.com/wtsdev/wts/internal/git"
	"github.com/wtsdev/wts/internal/hooks"
	"github.com/wtsdev/wts/internal/log"
	"github.com/wtsdev/wts/internal/output"
	"github.com/wtsdev/wts/internal/terminal"
	"github.com/wtsdev/wts/internal/ui"
	"github.com/wtsdev/wts/internal/worktree"
)

type switchOptions struct {
	branch       string
	terminalMode string
	afterInit    string
	fromBranch   string
	dir          string
	yes          bool
	cfg          *config.Config
	workDir      string
}

func runSwitch(ctx context.Context, opts switchOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	repoRoot, err := git.FindRepoRoot(ctx, opts.workDir)
	if err != nil {
		return err
	}

	modeStr := opts.terminalMode
	if modeStr == "" {
		modeStr = opts.cfg.Terminal
	}
	mode, err := terminal.ParseMode(modeStr)
	if err != nil {
		return err
	}

	registry := terminal.DefaultRegistry(out.Writer())
	repoName := git.RepoName(ctx, repoRoot)

	// An existing worktree is opened as-is, no git mutation.
	existing, err := git.FindWorktreeForBranch(ctx, repoRoot, opts.branch)
	if err != nil {
		return err
	}
	if existing != nil {
		l.Printf("Opening existing worktree %s\n", existing.Path)
		return openWorktree(ctx, registry, existing.Path, mode, joinInit(opts.cfg.SessionInit, opts.afterInit))
	}

	targetPath, err := switchTargetPath(repoRoot, repoName, opts)
	if err != nil {
		return err
	}

	hctx := hooks.Context{Path: targetPath, Branch: opts.branch, Repo: repoName}
	if err := hooks.Run(ctx, "pre_create", opts.cfg.Hooks.PreCreate, repoRoot, hctx); err != nil {
		return err
	}

	if !opts.yes {
		res, err := ui.Confirm(fmt.Sprintf("Create worktree for %q at %s?", opts.branch, targetPath))
		if err != nil {
			return err
		}
		if !res.Confirmed {
			// Declining is a successful no-op.
			out.Println("Aborted.")
			return nil
		}
	}

	if err := createWorktree(ctx, repoRoot, targetPath, opts); err != nil {
		return err
	}
	l.Printf("Created worktree %s\n", targetPath)

	if err := hooks.Run(ctx, "post_create", opts.cfg.Hooks.PostCreate, targetPath, hctx); err != nil {
		l.Warnf("%v\n", err)
	}
	hooks.RunAsync(ctx, "post_create_async", opts.cfg.Hooks.PostCreateAsync, targetPath, hctx)

	return openWorktree(ctx, registry, targetPath, mode, joinInit(opts.cfg.SessionInit, opts.afterInit))
}

// switchTargetPath computes where the new worktree goes: an explicit
// --dir wins over the configured path template.
func switchTargetPath(repoRoot, repoName string, opts switchOptions) (string, error) {
	if opts.dir != "" {
		abs, err := filepath.Abs(opts.dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve --dir: %w", err)
		}
		return abs, nil
	}
	return worktree.ResolvePath(repoRoot, repoName, opts.branch, opts.cfg.WorktreeFormat), nil
}

// createWorktree picks the creation flavor: attach to an existing local
// branch, branch from --from, track a same-named remote branch, or
// branch from the default branch.
func createWorktree(ctx context.Context, repoRoot, targetPath string, opts switchOptions) error {
	switch {
	case git.BranchExists(ctx, repoRoot, opts.branch):
		return git.AddWorktree(ctx, repoRoot, targetPath, opts.branch)
	case opts.fromBranch != "":
		return git.AddWorktreeNewBranch(ctx, repoRoot, targetPath, opts.branch, opts.fromBranch)
	case git.RemoteBranchExists(ctx, repoRoot, opts.branch):
		return git.AddWorktreeTracking(ctx, repoRoot, targetPath, opts.branch)
	default:
		return git.AddWorktreeNewBranch(ctx, repoRoot, targetPath, opts.branch, git.DefaultBranch(ctx, repoRoot))
	}
}

// joinInit combines the configured session init and a one-off after-init
// command into a single shell directive.
func joinInit(sessionInit, afterInit string) string {
	parts := make([]string, 0, 2)
	if sessionInit != "" {
		parts = append(parts, sessionInit)
	}
	if afterInit != "" {
		parts = append(parts, afterInit)
	}
	return strings.Join(parts, "; ")
}

// openWorktree opens path with the best provider for mode. No qualifying
// provider is a hard failure, not a silent success.
func openWorktree(ctx context.Context, registry *terminal.Registry, path string, mode terminal.Mode, initCommand string) error {
	provider := registry.Select(mode)
	if provider == nil {
		return fmt.Errorf("no terminal provider available for mode %q", mode)
	}

	l := log.FromContext(ctx)
	l.Debugf("opening %s with %s\n", path, provider.Name())

	return provider.Open(ctx, path, mode, initCommand)
}
