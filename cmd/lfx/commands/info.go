package commands

import "github.com/spf13/cobra"

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the workspace and the lockfile in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.session()
			if err != nil {
				return err
			}

			info, err := c.app.Info(session)
			if err != nil {
				return err
			}
			return c.report(cmd).Info(info)
		},
	}
}
