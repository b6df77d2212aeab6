package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"squire/internal/version"
)

// newRootCmd creates the root squire command with all subcommands attached.
func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "squire",
		Short:         "Lichess bot toolkit",
		Long:          "squire talks to the lichess bot API.\nIt manages challenges and games and can run a bot event loop.",
		Version:       fmt.Sprintf("squire %s", version.String()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/squire/config.toml)")

	cmd.AddCommand(
		newProfileCmd(&cfgPath),
		newChallengesCmd(&cfgPath),
		newAcceptCmd(&cfgPath),
		newDeclineCmd(&cfgPath),
		newMoveCmd(&cfgPath),
		newChatCmd(&cfgPath),
		newListenCmd(&cfgPath),
	)

	return cmd
}
