package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"squire/pkg/lichess"
)

// formatChallenges formats the pending-challenge listing for CLI output.
func formatChallenges(challenges *lichess.Challenges) string {
	if len(challenges.In) == 0 && len(challenges.Out) == 0 {
		return "No pending challenges.\n"
	}

	var b strings.Builder
	writeGroup := func(heading string, group []lichess.Challenge) {
		if len(group) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s:\n", heading)
		for _, c := range group {
			mode := "casual"
			if c.Rated {
				mode = "rated"
			}
			variant := "?"
			if c.Variant != nil {
				variant = string(*c.Variant)
			}
			fmt.Fprintf(&b, "  %s  %s vs %s | %s %s %s\n",
				c.ID, c.Challenger.Name, destName(c), variant, c.Speed, mode)
		}
	}
	writeGroup("Incoming", challenges.In)
	writeGroup("Outgoing", challenges.Out)
	return b.String()
}

func destName(c lichess.Challenge) string {
	if c.DestUser == nil {
		return "open"
	}
	return c.DestUser.Name
}

// newChallengesCmd creates the "squire challenges" subcommand.
func newChallengesCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "challenges",
		Short: "List pending challenges",
		Long:  "Lists the account's pending challenges,\nincoming and outgoing, with their ids.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient(*cfgPath)
			if err != nil {
				return err
			}

			challenges, err := c.Challenges(cmd.Context())
			if err != nil {
				return fmt.Errorf("challenges: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatChallenges(challenges))
			return nil
		},
	}
}
