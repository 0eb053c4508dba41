package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lfx/internal/core/domain"
)

func (c *CLI) newNormalizeCmd() *cobra.Command {
	var lockfile string
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the lockfile with every dependency path in the v5 format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// An explicit lockfile does not need a workspace around it.
			session := &domain.Session{}
			if lockfile == "" {
				var err error
				if session, err = c.session(); err != nil {
					return err
				}
			}
			return c.app.Normalize(cmd.OutOrStdout(), session, lockfile)
		},
	}
	cmd.Flags().StringVarP(&lockfile, "lockfile", "l", "", "Normalize this lockfile instead of the workspace one")
	return cmd
}
