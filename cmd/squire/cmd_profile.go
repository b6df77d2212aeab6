package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newProfileCmd creates the "squire profile" subcommand.
func newProfileCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient(*cfgPath)
			if err != nil {
				return err
			}

			profile, err := c.Profile(cmd.Context())
			if err != nil {
				return fmt.Errorf("profile: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (id %s)\n", profile.Username, profile.ID)
			return nil
		},
	}
}
