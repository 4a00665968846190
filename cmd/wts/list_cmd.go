package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wtsdev/wts/internal/git"
	"github.com/wtsdev/wts/internal/output"
)

type listEntry struct {
	Branch    string `json:"branch"`
	Path      string `json:"path"`
	IsPrimary bool   `json:"isPrimary"`
	IsCurrent bool   `json:"isCurrent"`
	Merged    bool   `json:"merged"`
	HasRemote bool   `json:"hasRemote"`
	Dirty     bool   `json:"dirty"`
	Unpushed  bool   `json:"unpushed"`
}

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List worktrees with branch status",
		Aliases: []string{"l", "ls"},
		Example: `  wts list           # List worktrees for the current repo
  wts list --json    # Output as JSON for scripting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repoRoot, err := git.FindRepoRoot(ctx, workDir)
			if err != nil {
				return err
			}

			worktrees, err := git.ListWorktrees(ctx, repoRoot)
			if err != nil {
				return err
			}

			resolver := git.NewResolver(repoRoot)
			entries := make([]listEntry, 0, len(worktrees))
			for _, wt := range worktrees {
				status := resolver.Resolve(ctx, wt)
				entries = append(entries, listEntry{
					Branch:    wt.Branch,
					Path:      wt.Path,
					IsPrimary: wt.IsPrimary,
					IsCurrent: wt.IsCurrent,
					Merged:    status.IsMerged || status.IsIdentical,
					HasRemote: status.HasRemote,
					Dirty:     status.HasUncommittedChanges,
					Unpushed:  status.HasUnpushedCommits,
				})
			}

			if asJSON {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, e := range entries {
				out.Printf("%s %-30s %s%s\n", listMarker(e), e.Branch, e.Path, listFlags(e))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func listMarker(e listEntry) string {
	switch {
	case e.IsCurrent:
		return "*"
	case e.IsPrimary:
		return "+"
	default:
		return " "
	}
}

func listFlags(e listEntry) string {
	var flags []string
	if e.Merged {
		flags = append(flags, "merged")
	}
	if !e.HasRemote {
		flags = append(flags, "no remote")
	}
	if e.Dirty {
		flags = append(flags, "dirty")
	}
	if e.Unpushed {
		flags = append(flags, "unpushed")
	}
	if len(flags) == 0 {
		return ""
	}
	return "  [" + strings.Join(flags, ", ") + "]"
}
