package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"squire/pkg/lichess"
)

// declineReasons is the closed set the server accepts for --reason.
var declineReasons = map[string]lichess.DeclineReason{
	"generic":     lichess.DeclineGeneric,
	"later":       lichess.DeclineLater,
	"tooFast":     lichess.DeclineTooFast,
	"tooSlow":     lichess.DeclineTooSlow,
	"timeControl": lichess.DeclineTimeControl,
	"rated":       lichess.DeclineRated,
	"casual":      lichess.DeclineCasual,
	"standard":    lichess.DeclineStandard,
	"variant":     lichess.DeclineVariant,
	"noBot":       lichess.DeclineNoBot,
	"onlyBot":     lichess.DeclineOnlyBot,
}

// newDeclineCmd creates the "squire decline" subcommand.
func newDeclineCmd(cfgPath *string) *cobra.Command {
	var reasonFlag string

	cmd := &cobra.Command{
		Use:   "decline <challenge-id>",
		Short: "Decline a challenge",
		Long:  "Declines a challenge, optionally with a typed reason\nshown to the challenger (e.g. tooFast, casual, noBot).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var reason *lichess.DeclineReason
			if reasonFlag != "" {
				r, ok := declineReasons[reasonFlag]
				if !ok {
					return fmt.Errorf("unknown decline reason %q", reasonFlag)
				}
				reason = &r
			}

			c, err := buildClient(*cfgPath)
			if err != nil {
				return err
			}

			if err := c.DeclineChallenge(cmd.Context(), args[0], reason); err != nil {
				return fmt.Errorf("decline %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "declined %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&reasonFlag, "reason", "", "typed decline reason")
	return cmd
}
