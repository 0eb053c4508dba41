package commands

import "github.com/spf13/cobra"

func (c *CLI) newFindCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "find <name>",
		Aliases: []string{"find-dependency"},
		Short:   "Find occurrences of a dependency recursively",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}

			session, err := c.session()
			if err != nil {
				return err
			}

			occurrences, err := c.app.Find(cmd.Context(), session, name, all)
			if err != nil {
				return err
			}
			return c.report(cmd).Occurrences(name, occurrences)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Search every project that shares the lockfile")
	return cmd
}
