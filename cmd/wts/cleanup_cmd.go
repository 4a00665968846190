package main

import (
	"github.com/spf13/cobra"

	"github.com/wtsdev/wts/internal/cleanup"
)

func newCleanupCmd() *cobra.Command {
	var (
		modeStr string
		dryRun  bool
		force   bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:     "cleanup",
		Short:   "Remove worktrees whose branches are done",
		Aliases: []string{"c", "clean"},
		Long: `Remove non-primary worktrees and their local branches.

The mode decides which worktrees qualify:

  all          every worktree without uncommitted changes
  remoteless   branches with no tracking remote
  merged       branches merged into the default branch
  interactive  pick worktrees from a list
  github       branches whose most recent PR is merged or closed

Worktrees with uncommitted changes are never removed unless --force is
given. The remoteless and merged modes also require no unpushed commits.`,
		Example: `  wts cleanup                        # Remove merged worktrees
  wts cleanup --mode remoteless      # Remove branches with no remote
  wts cleanup --mode github          # Remove branches with merged/closed PRs
  wts cleanup --mode interactive     # Pick worktrees to remove
  wts cleanup --dry-run              # Preview without removing
  wts cleanup -y                     # Skip the confirmation prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cleanup.ParseMode(modeStr)
			if err != nil {
				return err
			}
			return runCleanup(cmd.Context(), cleanupOptions{
				mode:    mode,
				dryRun:  dryRun,
				force:   force,
				yes:     yes,
				workDir: workDir,
			})
		},
	}

	cmd.Flags().StringVarP(&modeStr, "mode", "m", string(cleanup.ModeMerged), "Cleanup mode: all, remoteless, merged, interactive, github")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "List candidates without removing anything")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove worktrees with uncommitted or unpushed changes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
