package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newAcceptCmd creates the "squire accept" subcommand.
func newAcceptCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <challenge-id>",
		Short: "Accept a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient(*cfgPath)
			if err != nil {
				return err
			}

			if err := c.AcceptChallenge(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("accept %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "accepted %s\n", args[0])
			return nil
		},
	}
}
