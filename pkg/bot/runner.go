package bot

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"squire/pkg/client"
	"squire/pkg/lichess"
)

// ProtocolError reports a per-game stream that violated the wire contract,
// such as opening with something other than the full game record.
type ProtocolError struct {
	GameID  string
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("game %s: %s", e.GameID, e.Message)
}

// Runner drives a Handler from the live streams. Client and Handler must
// both be set; Logger may be nil to log through the default logger.
type Runner struct {
	Client  *client.BotClient
	Handler Handler
	Logger  *log.Logger
}

func (r *Runner) logf(format string, args ...any) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf(format, args...)
}

// Run fetches the bot's own profile, opens the account event stream and
// dispatches every record to the Handler on its own goroutine. A gameStart
// record additionally launches that game's stream loop. Run blocks until
// the event stream ends or fails; before returning it waits for every
// callback and game loop it spawned. A failing game loop is logged and
// does not end the run.
func (r *Runner) Run(ctx context.Context) error {
	profile, err := r.Client.Profile(ctx)
	if err != nil {
		return fmt.Errorf("fetch own profile: %w", err)
	}
	botCtx := &BotContext{BotID: profile.ID}
	r.logf("bot %s: event loop starting", botCtx.BotID)

	stream, err := r.Client.StreamEvents(ctx)
	if err != nil {
		return fmt.Errorf("open event stream: %w", err)
	}
	defer stream.Close()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			r.logf("bot %s: event stream ended", botCtx.BotID)
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("event stream: %w", err)
		}
		r.dispatch(ctx, botCtx, ev, &wg)
	}
}

// dispatch hands one account stream record to the Handler on a fresh
// goroutine. A gameStart record continues, on that same goroutine, into
// the game's stream loop.
func (r *Runner) dispatch(ctx context.Context, botCtx *BotContext, ev *lichess.BotEvent, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		switch ev.Type {
		case lichess.EventGameStart:
			r.Handler.OnGameStart(ctx, botCtx, r.Client, ev.Game)
			if ev.Game.ID == nil {
				r.logf("bot %s: gameStart without a game id, no loop to run", botCtx.BotID)
				return
			}
			if err := r.runGame(ctx, botCtx, *ev.Game.ID); err != nil {
				r.logf("bot %s: game %s: loop ended: %v", botCtx.BotID, *ev.Game.ID, err)
			}
		case lichess.EventGameFinish:
			r.Handler.OnGameFinish(ctx, botCtx, r.Client, ev.Game)
		case lichess.EventChallenge:
			r.Handler.OnChallenge(ctx, botCtx, r.Client, ev.Challenge)
		case lichess.EventChallengeCanceled:
			r.Handler.OnChallengeCanceled(ctx, botCtx, r.Client, ev.Challenge)
		case lichess.EventChallengeDeclined:
			r.Handler.OnChallengeDeclined(ctx, botCtx, r.Client, ev.Challenge)
		}
	}()
}

// runGame drives one game's stream. The first record must be the full game
// description; the game context is derived from it once and shared by
// every callback. The initial state embedded in that record is delivered
// synchronously, so it is always observed before any later record of the
// same game. Subsequent records each get their own goroutine.
func (r *Runner) runGame(ctx context.Context, botCtx *BotContext, gameID string) error {
	session := uuid.New().String()
	r.logf("bot %s: game %s: loop starting (session %s)", botCtx.BotID, gameID, session)

	stream, err := r.Client.StreamGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("open game stream: %w", err)
	}
	defer stream.Close()

	first, err := stream.Recv()
	if err != nil {
		return fmt.Errorf("read opening record: %w", err)
	}
	if first.Type != lichess.EventGameFull {
		return &ProtocolError{GameID: gameID, Message: fmt.Sprintf("stream opened with %s, want gameFull", first.Type)}
	}

	gameCtx := newGameContext(botCtx, first.Full)
	initial := first.Full.State
	r.Handler.OnGameState(ctx, gameCtx, r.Client, &initial)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			r.logf("bot %s: game %s: stream ended (session %s)", botCtx.BotID, gameID, session)
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("game stream: %w", err)
		}

		if ev.Type == lichess.EventGameFull {
			return &ProtocolError{GameID: gameID, Message: "gameFull received twice"}
		}

		wg.Add(1)
		go func(ev *lichess.GameEvent) {
			defer wg.Done()
			switch ev.Type {
			case lichess.EventGameState:
				r.Handler.OnGameState(ctx, gameCtx, r.Client, ev.State)
			case lichess.EventChatLine:
				r.Handler.OnChatLine(ctx, gameCtx, r.Client, ev.Chat)
			case lichess.EventOpponentGone:
				r.Handler.OnOpponentGone(ctx, gameCtx, r.Client, ev.Gone)
			}
		}(ev)
	}
}
