package lichess

import (
	"encoding/json"
	"fmt"
)

// BotEventType discriminates the records of the account event stream.
type BotEventType string

// Account event stream record types.
const (
	EventGameStart         BotEventType = "gameStart"
	EventGameFinish        BotEventType = "gameFinish"
	EventChallenge         BotEventType = "challenge"
	EventChallengeCanceled BotEventType = "challengeCanceled"
	EventChallengeDeclined BotEventType = "challengeDeclined"
)

// BotEvent is one record of the account event stream. Exactly one payload
// field is set, matching Type: Game for the gameStart and gameFinish
// events, Challenge for the three challenge events.
type BotEvent struct {
	Type      BotEventType
	Game      *GameStartFinish
	Challenge *Challenge
}

// UnmarshalJSON decodes an account stream record by its type tag. Records
// with an unrecognized type or a missing payload are an error.
func (e *BotEvent) UnmarshalJSON(data []byte) error {
	var head struct {
		Type      BotEventType     `json:"type"`
		Game      *GameStartFinish `json:"game"`
		Challenge *Challenge       `json:"challenge"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case EventGameStart, EventGameFinish:
		if head.Game == nil {
			return fmt.Errorf("%s event without game payload", head.Type)
		}
		e.Game = head.Game
	case EventChallenge, EventChallengeCanceled, EventChallengeDeclined:
		if head.Challenge == nil {
			return fmt.Errorf("%s event without challenge payload", head.Type)
		}
		e.Challenge = head.Challenge
	default:
		return fmt.Errorf("unknown bot event type %q", head.Type)
	}
	e.Type = head.Type
	return nil
}

// GameEventType discriminates the records of a per-game stream.
type GameEventType string

// Per-game stream record types.
const (
	EventGameFull     GameEventType = "gameFull"
	EventGameState    GameEventType = "gameState"
	EventChatLine     GameEventType = "chatLine"
	EventOpponentGone GameEventType = "opponentGone"
)

// GameEvent is one record of a per-game stream. Payload fields live at the
// top level of the record next to the type tag, so the payload struct
// matching Type is decoded from the whole record.
type GameEvent struct {
	Type  GameEventType
	Full  *GameFull
	State *GameState
	Chat  *ChatLineEvent
	Gone  *OpponentGone
}

// UnmarshalJSON decodes a game stream record by its type tag. Records with
// an unrecognized type are an error.
func (e *GameEvent) UnmarshalJSON(data []byte) error {
	var head struct {
		Type GameEventType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case EventGameFull:
		e.Full = new(GameFull)
		if err := json.Unmarshal(data, e.Full); err != nil {
			return err
		}
	case EventGameState:
		e.State = new(GameState)
		if err := json.Unmarshal(data, e.State); err != nil {
			return err
		}
	case EventChatLine:
		e.Chat = new(ChatLineEvent)
		if err := json.Unmarshal(data, e.Chat); err != nil {
			return err
		}
	case EventOpponentGone:
		e.Gone = new(OpponentGone)
		if err := json.Unmarshal(data, e.Gone); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown game event type %q", head.Type)
	}
	e.Type = head.Type
	return nil
}
