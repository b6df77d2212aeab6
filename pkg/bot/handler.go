package bot

import (
	"context"

	"squire/pkg/client"
	"squire/pkg/lichess"
)

// Handler receives every record the runner pulls off the streams. Account
// level callbacks get the shared *BotContext; per-game callbacks get the
// game's shared *GameContext. Callbacks run on their own goroutines and may
// fire concurrently, including for the same game, so implementations must
// be safe for concurrent use. The client is passed in so callbacks can act
// (play a move, decline a challenge) without holding their own reference.
//
// Embed NopHandler to implement only the callbacks you care about.
type Handler interface {
	OnGameStart(ctx context.Context, botCtx *BotContext, c *client.BotClient, game *lichess.GameStartFinish)
	OnGameFinish(ctx context.Context, botCtx *BotContext, c *client.BotClient, game *lichess.GameStartFinish)
	OnChallenge(ctx context.Context, botCtx *BotContext, c *client.BotClient, challenge *lichess.Challenge)
	OnChallengeCanceled(ctx context.Context, botCtx *BotContext, c *client.BotClient, challenge *lichess.Challenge)
	OnChallengeDeclined(ctx context.Context, botCtx *BotContext, c *client.BotClient, challenge *lichess.Challenge)

	OnGameState(ctx context.Context, gameCtx *GameContext, c *client.BotClient, state *lichess.GameState)
	OnChatLine(ctx context.Context, gameCtx *GameContext, c *client.BotClient, chat *lichess.ChatLineEvent)
	OnOpponentGone(ctx context.Context, gameCtx *GameContext, c *client.BotClient, gone *lichess.OpponentGone)
}

// NopHandler implements Handler with empty callbacks. Embed it so a handler
// only needs to spell out the events it reacts to.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) OnGameStart(context.Context, *BotContext, *client.BotClient, *lichess.GameStartFinish) {
}

func (NopHandler) OnGameFinish(context.Context, *BotContext, *client.BotClient, *lichess.GameStartFinish) {
}

func (NopHandler) OnChallenge(context.Context, *BotContext, *client.BotClient, *lichess.Challenge) {}

func (NopHandler) OnChallengeCanceled(context.Context, *BotContext, *client.BotClient, *lichess.Challenge) {
}

func (NopHandler) OnChallengeDeclined(context.Context, *BotContext, *client.BotClient, *lichess.Challenge) {
}

func (NopHandler) OnGameState(context.Context, *GameContext, *client.BotClient, *lichess.GameState) {
}

func (NopHandler) OnChatLine(context.Context, *GameContext, *client.BotClient, *lichess.ChatLineEvent) {
}

func (NopHandler) OnOpponentGone(context.Context, *GameContext, *client.BotClient, *lichess.OpponentGone) {
}
