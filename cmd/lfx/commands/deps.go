package commands

import "github.com/spf13/cobra"

func (c *CLI) newDepsCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "List the direct dependencies of the current project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.session()
			if err != nil {
				return err
			}

			results, err := c.app.Deps(cmd.Context(), session, all)
			if err != nil {
				return err
			}
			return c.report(cmd).Dependencies(results)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every project that shares the lockfile")
	return cmd
}
