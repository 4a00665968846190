package main

import (
	"github.com/spf13/cobra"
)

func newSwitchCmd() *cobra.Command {
	var (
		terminalMode string
		afterInit    string
		fromBranch   string
		dir          string
		yes          bool
	)

	cmd := &cobra.Command{
		Use:     "switch <branch>",
		Short:   "Switch to a branch's worktree, creating it if needed",
		Aliases: []string{"s", "sw"},
		Args:    cobra.ExactArgs(1),
		Long: `Switch to the worktree for a branch.

If a worktree for the branch already exists, it is opened directly.
Otherwise a new worktree is created: attached to the local branch if it
exists, tracking a same-named remote branch if one exists, or branched
from the default branch. The new worktree is then opened in the
configured terminal.`,
		Example: `  wts switch feature-x                 # Open or create the feature-x worktree
  wts switch feature-x --from develop  # Branch from develop instead of the default branch
  wts switch feature-x -t vscode       # Open in VS Code
  wts switch feature-x -t echo         # Print the path (cd $(wts switch x -t echo))
  wts switch feature-x --after-init "npm install"
  wts switch feature-x -y              # Skip the confirmation prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd.Context(), switchOptions{
				branch:       args[0],
				terminalMode: terminalMode,
				afterInit:    afterInit,
				fromBranch:   fromBranch,
				dir:          dir,
				yes:          yes,
				cfg:          cfg,
				workDir:      workDir,
			})
		},
	}

	cmd.Flags().StringVarP(&terminalMode, "terminal", "t", "", "Terminal mode: tab, window, inplace, echo, vscode, cursor (default from config)")
	cmd.Flags().StringVar(&afterInit, "after-init", "", "One-off command to run after the session init")
	cmd.Flags().StringVar(&fromBranch, "from", "", "Branch the new worktree from this branch")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Explicit worktree directory (overrides worktree_format)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
