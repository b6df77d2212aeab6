package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"squire/pkg/bot"
	"squire/pkg/client"
	"squire/pkg/lichess"
	"squire/pkg/policy"
)

// listenHandler logs every event. When a policy is set, incoming challenges
// are answered automatically and new games get a greeting in the chat.
type listenHandler struct {
	bot.NopHandler

	policy *policy.Policy
	logger *log.Logger
}

func (h *listenHandler) OnChallenge(ctx context.Context, botCtx *bot.BotContext, c *client.BotClient, challenge *lichess.Challenge) {
	h.logger.Printf("challenge %s from %s (%s, rated=%t)",
		challenge.ID, challenge.Challenger.Name, challenge.Speed, challenge.Rated)
	if h.policy == nil {
		return
	}

	decision := h.policy.Decide(*challenge)
	if decision.Accept {
		if err := c.AcceptChallenge(ctx, challenge.ID); err != nil {
			h.logger.Printf("challenge %s: accept failed: %v", challenge.ID, err)
			return
		}
		h.logger.Printf("challenge %s: accepted", challenge.ID)
		return
	}
	if err := c.DeclineChallenge(ctx, challenge.ID, &decision.Reason); err != nil {
		h.logger.Printf("challenge %s: decline failed: %v", challenge.ID, err)
		return
	}
	h.logger.Printf("challenge %s: declined (%s)", challenge.ID, decision.Reason)
}

func (h *listenHandler) OnChallengeCanceled(_ context.Context, _ *bot.BotContext, _ *client.BotClient, challenge *lichess.Challenge) {
	h.logger.Printf("challenge %s: canceled by challenger", challenge.ID)
}

func (h *listenHandler) OnChallengeDeclined(_ context.Context, _ *bot.BotContext, _ *client.BotClient, challenge *lichess.Challenge) {
	h.logger.Printf("challenge %s: declined by opponent", challenge.ID)
}

func (h *listenHandler) OnGameStart(ctx context.Context, _ *bot.BotContext, c *client.BotClient, game *lichess.GameStartFinish) {
	if game.ID == nil {
		return
	}
	h.logger.Printf("game %s: started", *game.ID)
	if h.policy == nil {
		return
	}
	if err := c.SendChat(ctx, *game.ID, lichess.RoomPlayer, "Good luck, have fun!"); err != nil {
		h.logger.Printf("game %s: greeting failed: %v", *game.ID, err)
	}
}

func (h *listenHandler) OnGameFinish(_ context.Context, _ *bot.BotContext, _ *client.BotClient, game *lichess.GameStartFinish) {
	if game.ID == nil {
		return
	}
	winner := "nobody"
	if game.Winner != nil {
		winner = string(*game.Winner)
	}
	h.logger.Printf("game %s: finished, %s won", *game.ID, winner)
}

func (h *listenHandler) OnGameState(_ context.Context, gameCtx *bot.GameContext, _ *client.BotClient, state *lichess.GameState) {
	h.logger.Printf("game %s: %d moves, status %s", gameCtx.Info.ID, countMoves(state.Moves), state.Status)
}

func (h *listenHandler) OnChatLine(_ context.Context, gameCtx *bot.GameContext, _ *client.BotClient, chat *lichess.ChatLineEvent) {
	h.logger.Printf("game %s: [%s] %s: %s", gameCtx.Info.ID, chat.Room, chat.Username, chat.Text)
}

func (h *listenHandler) OnOpponentGone(_ context.Context, gameCtx *bot.GameContext, _ *client.BotClient, gone *lichess.OpponentGone) {
	if gone.Gone {
		h.logger.Printf("game %s: opponent gone", gameCtx.Info.ID)
	} else {
		h.logger.Printf("game %s: opponent back", gameCtx.Info.ID)
	}
}

func countMoves(moves string) int {
	if moves == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(moves); i++ {
		if moves[i] == ' ' {
			n++
		}
	}
	return n
}

// newListenCmd creates the "squire listen" subcommand.
func newListenCmd(cfgPath *string) *cobra.Command {
	var policyPath string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run the bot event loop",
		Long:  "Connects to the event stream and logs everything.\nWith --policy, challenges are accepted or declined automatically.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient(*cfgPath)
			if err != nil {
				return err
			}

			handler := &listenHandler{logger: log.Default()}
			if policyPath != "" {
				p, err := policy.Load(policyPath)
				if err != nil {
					return err
				}
				handler.policy = &p
			}

			runner := &bot.Runner{Client: c, Handler: handler}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&policyPath, "policy", "", "challenge policy file (YAML)")
	return cmd
}
