package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newMoveCmd creates the "squire move" subcommand.
func newMoveCmd(cfgPath *string) *cobra.Command {
	var offerDraw bool

	cmd := &cobra.Command{
		Use:   "move <game-id> <uci>",
		Short: "Play a move in a game",
		Long:  "Plays a move given in UCI notation (e.g. e2e4, e7e8q).\nWith --offer-draw the move also offers or agrees to a draw.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient(*cfgPath)
			if err != nil {
				return err
			}

			if err := c.Move(cmd.Context(), args[0], args[1], offerDraw); err != nil {
				return fmt.Errorf("move %s in %s: %w", args[1], args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "played %s\n", args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&offerDraw, "offer-draw", false, "offer or agree to a draw with this move")
	return cmd
}
