package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"squire/pkg/lichess"
)

// newChatCmd creates the "squire chat" subcommand.
func newChatCmd(cfgPath *string) *cobra.Command {
	var room string

	cmd := &cobra.Command{
		Use:   "chat <game-id> <text>",
		Short: "Post a chat message in a game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatRoom := lichess.ChatRoom(room)
			if chatRoom != lichess.RoomPlayer && chatRoom != lichess.RoomSpectator {
				return fmt.Errorf("unknown room %q, want player or spectator", room)
			}

			c, err := buildClient(*cfgPath)
			if err != nil {
				return err
			}

			if err := c.SendChat(cmd.Context(), args[0], chatRoom, args[1]); err != nil {
				return fmt.Errorf("chat in %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&room, "room", string(lichess.RoomPlayer), "chat room (player or spectator)")
	return cmd
}
