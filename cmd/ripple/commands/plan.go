package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ripple/internal/app"
	"go.trai.ch/ripple/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <package>",
		Short: "Plan the installation of a package and its dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args[0], false)
		},
	}
	cmd.Flags().StringP("version", "v", "", "Install this exact version instead of the latest")
	cmd.Flags().StringP("project", "p", "", "Also add the package to this project")
	cmd.Flags().Bool("float", false, "Record the package as floating")
	cmd.Flags().Bool("prerelease", false, "Allow pre-release versions")
	cmd.Flags().BoolP("apply", "a", false, "Write the plan to the solution file")
	return cmd
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <package>",
		Short: "Plan the update of a package and its dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args[0], true)
		},
	}
	cmd.Flags().StringP("version", "v", "", "Update to this exact version instead of the latest")
	cmd.Flags().BoolP("force", "f", false, "Update dependencies even when they are fixed")
	cmd.Flags().Bool("prerelease", false, "Allow pre-release versions")
	cmd.Flags().BoolP("apply", "a", false, "Write the plan to the solution file")
	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, pkg string, update bool) error {
	flags := cmd.Flags()
	version, _ := flags.GetString("version")
	apply, _ := flags.GetBool("apply")
	preRelease, _ := flags.GetBool("prerelease")

	opts := app.PlanOptions{
		ConfigPath: configPath(cmd),
		Package:    pkg,
		Version:    version,
		Update:     update,
		PreRelease: preRelease,
		Apply:      apply,
	}
	if update {
		opts.Force, _ = flags.GetBool("force")
	} else {
		opts.Project, _ = flags.GetString("project")
		opts.Float, _ = flags.GetBool("float")
	}

	plan, err := c.app.Plan(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printPlan(cmd.OutOrStdout(), plan)
	return nil
}

func printPlan(w io.Writer, plan *domain.Plan) {
	if plan.IsEmpty() {
		_, _ = fmt.Fprintln(w, "Nothing to do")
		return
	}
	for _, step := range plan.Steps() {
		_, _ = fmt.Fprintf(w, "  - %s\n", step)
	}
}
