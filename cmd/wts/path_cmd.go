package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/wtsdev/wts/internal/git"
	"github.com/wtsdev/wts/internal/log"
	"github.com/wtsdev/wts/internal/output"
)

func newPathCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "path <branch>",
		Short: "Print a worktree's path for shell scripting",
		Args:  cobra.ExactArgs(1),
		Long: `Print the path of the worktree for a branch.

Use with shell command substitution: cd $(wts path feature-x)`,
		Example: `  cd $(wts path feature-x)   # cd to the feature-x worktree
  wts path feature-x --copy  # copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repoRoot, err := git.FindRepoRoot(ctx, workDir)
			if err != nil {
				return err
			}

			wt, err := git.FindWorktreeForBranch(ctx, repoRoot, args[0])
			if err != nil {
				return err
			}
			if wt == nil {
				return fmt.Errorf("no worktree found for branch %q", args[0])
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(wt.Path); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				l := log.FromContext(ctx)
				l.Printf("Copied %s to clipboard\n", wt.Path)
				return nil
			}

			out.Println(wt.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the path to the clipboard instead of printing it")

	return cmd
}
