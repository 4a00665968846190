package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/wtsdev/wts/internal/config"
	"github.com/wtsdev/wts/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage wts configuration",
		Example: `  wts config init    # Create a default config file
  wts config show    # Show the effective configuration`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file at ~/.config/wts/config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if asJSON {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			out.Printf("worktree_format = %q\n", cfg.WorktreeFormat)
			out.Printf("terminal = %q\n", cfg.Terminal)
			out.Printf("session_init = %q\n", cfg.SessionInit)
			out.Printf("hooks.pre_create = %q\n", cfg.Hooks.PreCreate)
			out.Printf("hooks.post_create = %q\n", cfg.Hooks.PostCreate)
			out.Printf("hooks.post_create_async = %q\n", cfg.Hooks.PostCreateAsync)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
