// Package bot runs a lichess bot: it connects a Handler implementation to
// the account event stream and to one stream per game, fanning callbacks
// out onto goroutines.
package bot

import "squire/pkg/lichess"

// BotContext carries the account-level facts shared by every callback. It
// is built once per run and never mutated afterwards, so sharing it across
// goroutines needs no locking.
type BotContext struct {
	// BotID is the lowercase account id of the authenticated bot.
	BotID string
}

// GameContext extends BotContext with the immutable facts of one game. One
// value is derived from the game's first stream record and shared by every
// callback of that game.
type GameContext struct {
	BotContext

	// BotColor is the side the bot plays, or nil when the bot holds
	// neither seat (e.g. a spectated or imported game).
	BotColor *lichess.Color

	// Info is the game's immutable metadata.
	Info lichess.GameInfo
}

// newGameContext derives the per-game context from the initial full-game
// record.
func newGameContext(botCtx *BotContext, full *lichess.GameFull) *GameContext {
	return &GameContext{
		BotContext: *botCtx,
		BotColor:   seatOf(botCtx.BotID, &full.GameInfo),
		Info:       full.GameInfo,
	}
}

// seatOf returns the color whose seat is held by the given player id, or
// nil when the player holds neither seat.
func seatOf(playerID string, info *lichess.GameInfo) *lichess.Color {
	if info.White.ID != nil && *info.White.ID == playerID {
		white := lichess.ColorWhite
		return &white
	}
	if info.Black.ID != nil && *info.Black.ID == playerID {
		black := lichess.ColorBlack
		return &black
	}
	return nil
}
