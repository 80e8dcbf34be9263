package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/ripple/internal/app"
)

func (c *CLI) newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Explode every solution dependency into the packages directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			restored, err := c.app.Restore(cmd.Context(), app.RestoreOptions{
				ConfigPath: configPath(cmd),
				Force:      force,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, pkg := range restored {
				status := ""
				if pkg.Cached {
					status = " (up to date)"
				}
				_, _ = fmt.Fprintf(out, "%s %s %s%s\n", pkg.Identity.FileStem(), pkg.Checksum, pkg.Directory, status)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Explode packages even when their directory is up to date")
	return cmd
}

func (c *CLI) newLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "List the latest version of every package in the floating feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			latest, err := c.app.Latest(cmd.Context(), configPath(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range latest {
				_, _ = fmt.Fprintf(out, "%s %s\n", id.Name, id.Version)
			}
			return nil
		},
	}
}
