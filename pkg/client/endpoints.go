package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"squire/pkg/lichess"
)

// declineRequest is the decline endpoint's body. An absent reason is sent
// as an empty object, which the server treats as the generic reason.
type declineRequest struct {
	Reason *lichess.DeclineReason `json:"reason,omitempty"`
}

// AcceptChallenge accepts the challenge with the given id.
func (c *BotClient) AcceptChallenge(ctx context.Context, challengeID string) error {
	return c.post(ctx, fmt.Sprintf("/challenge/%s/accept", url.PathEscape(challengeID)), "", nil)
}

// DeclineChallenge declines the challenge with the given id. reason may be
// nil to decline without a stated reason.
func (c *BotClient) DeclineChallenge(ctx context.Context, challengeID string, reason *lichess.DeclineReason) error {
	path := fmt.Sprintf("/challenge/%s/decline", url.PathEscape(challengeID))
	return c.postJSON(ctx, path, declineRequest{Reason: reason})
}

// Move plays a move, given in UCI notation, in the game. offeringDraw
// offers a draw (or agrees to a pending one) alongside the move; it is sent
// explicitly either way so the server never falls back to a default.
func (c *BotClient) Move(ctx context.Context, gameID, move string, offeringDraw bool) error {
	path := fmt.Sprintf("/bot/game/%s/move/%s?offeringDraw=%t",
		url.PathEscape(gameID), url.PathEscape(move), offeringDraw)
	return c.post(ctx, path, "", nil)
}

// Abort aborts the game. Only games without meaningful progress can be
// aborted; the server rejects the rest.
func (c *BotClient) Abort(ctx context.Context, gameID string) error {
	return c.post(ctx, fmt.Sprintf("/bot/game/%s/abort", url.PathEscape(gameID)), "", nil)
}

// Resign resigns the game.
func (c *BotClient) Resign(ctx context.Context, gameID string) error {
	return c.post(ctx, fmt.Sprintf("/bot/game/%s/resign", url.PathEscape(gameID)), "", nil)
}

// AgreeDraw offers a draw, or accepts the opponent's pending offer.
func (c *BotClient) AgreeDraw(ctx context.Context, gameID string) error {
	return c.post(ctx, fmt.Sprintf("/bot/game/%s/draw/yes", url.PathEscape(gameID)), "", nil)
}

// DeclineDraw declines the opponent's pending draw offer.
func (c *BotClient) DeclineDraw(ctx context.Context, gameID string) error {
	return c.post(ctx, fmt.Sprintf("/bot/game/%s/draw/no", url.PathEscape(gameID)), "", nil)
}

// AddTime grants the opponent extra clock time, in seconds.
func (c *BotClient) AddTime(ctx context.Context, gameID string, seconds int) error {
	path := fmt.Sprintf("/round/%s/add-time/%s", url.PathEscape(gameID), strconv.Itoa(seconds))
	return c.post(ctx, path, "", nil)
}

// SendChat posts a message to one of the game's chat rooms.
func (c *BotClient) SendChat(ctx context.Context, gameID string, room lichess.ChatRoom, text string) error {
	form := url.Values{}
	form.Set("room", string(room))
	form.Set("text", text)
	return c.postForm(ctx, fmt.Sprintf("/bot/game/%s/chat", url.PathEscape(gameID)), form)
}

// ChatHistory fetches the game's chat so far, both rooms mixed in posting
// order.
func (c *BotClient) ChatHistory(ctx context.Context, gameID string) ([]lichess.ChatLine, error) {
	var lines []lichess.ChatLine
	if err := c.getJSON(ctx, fmt.Sprintf("/bot/game/%s/chat", url.PathEscape(gameID)), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// User fetches the public profile of any user.
func (c *BotClient) User(ctx context.Context, username string) (*lichess.User, error) {
	var user lichess.User
	if err := c.getJSON(ctx, "/user/"+url.PathEscape(username), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Profile fetches the authenticated account's own profile.
func (c *BotClient) Profile(ctx context.Context) (*lichess.UserProfile, error) {
	var profile lichess.UserProfile
	if err := c.getJSON(ctx, "/account", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Preferences fetches the authenticated account's preferences.
func (c *BotClient) Preferences(ctx context.Context) (*lichess.UserPreferences, error) {
	var prefs lichess.UserPreferences
	if err := c.getJSON(ctx, "/account/preferences", &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Challenges lists the account's pending challenges, received and sent.
func (c *BotClient) Challenges(ctx context.Context) (*lichess.Challenges, error) {
	var challenges lichess.Challenges
	if err := c.getJSON(ctx, "/challenge", &challenges); err != nil {
		return nil, err
	}
	return &challenges, nil
}

// StreamEvents opens the account event stream. The request is issued
// immediately; records are pulled with Recv. Cancel ctx or Close the stream
// to end it.
func (c *BotClient) StreamEvents(ctx context.Context) (*EventStream, error) {
	body, err := c.stream(ctx, "/stream/event")
	if err != nil {
		return nil, err
	}
	return &EventStream{r: newNDJSONReader(body)}, nil
}

// StreamGame opens the event stream of one game. The first record is the
// full game description, followed by state updates, chat lines and
// opponent-gone notices.
func (c *BotClient) StreamGame(ctx context.Context, gameID string) (*GameStream, error) {
	body, err := c.stream(ctx, fmt.Sprintf("/bot/game/stream/%s", url.PathEscape(gameID)))
	if err != nil {
		return nil, err
	}
	return &GameStream{r: newNDJSONReader(body)}, nil
}
