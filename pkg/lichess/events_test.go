package lichess_test

import (
	"encoding/json"
	"testing"

	"squire/pkg/lichess"
)

func TestBotEventUnmarshal(t *testing.T) {
	t.Run("game start", func(t *testing.T) {
		raw := `{
			"type": "gameStart",
			"game": {
				"id": "rCRw1AuO",
				"source": "friend",
				"status": {"id": 20, "name": "started"},
				"compat": {"bot": false, "board": true}
			}
		}`
		var ev lichess.BotEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Type != lichess.EventGameStart {
			t.Errorf("Type = %v, want %v", ev.Type, lichess.EventGameStart)
		}
		if ev.Game == nil || ev.Game.ID == nil || *ev.Game.ID != "rCRw1AuO" {
			t.Fatalf("Game = %+v, want id rCRw1AuO", ev.Game)
		}
		if ev.Game.Status == nil || *ev.Game.Status != lichess.StatusStarted {
			t.Errorf("Status = %v, want started", ev.Game.Status)
		}
		if ev.Game.Compat == nil || ev.Game.Compat.Board == nil || !*ev.Game.Compat.Board {
			t.Errorf("Compat = %+v, want board true", ev.Game.Compat)
		}
	})

	t.Run("game finish with winner", func(t *testing.T) {
		raw := `{
			"type": "gameFinish",
			"game": {"id": "rCRw1AuO", "status": {"id": 31}, "winner": "black"}
		}`
		var ev lichess.BotEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Type != lichess.EventGameFinish {
			t.Errorf("Type = %v, want %v", ev.Type, lichess.EventGameFinish)
		}
		if ev.Game.Status == nil || *ev.Game.Status != lichess.StatusResign {
			t.Errorf("Status = %v, want resign", ev.Game.Status)
		}
		if ev.Game.Winner == nil || *ev.Game.Winner != lichess.ColorBlack {
			t.Errorf("Winner = %v, want black", ev.Game.Winner)
		}
	})

	t.Run("challenge", func(t *testing.T) {
		raw := `{
			"type": "challenge",
			"challenge": {
				"id": "7pGLxJ4F",
				"url": "https://lichess.org/7pGLxJ4F",
				"status": "created",
				"challenger": {"id": "thibot", "name": "thibot", "title": "BOT", "rating": 1500},
				"variant": {"key": "standard", "name": "Standard"},
				"rated": true,
				"speed": "blitz",
				"timeControl": {"type": "clock", "limit": 300, "increment": 2},
				"color": "random",
				"perf": {"icon": ";", "name": "Blitz"}
			}
		}`
		var ev lichess.BotEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Type != lichess.EventChallenge {
			t.Errorf("Type = %v, want %v", ev.Type, lichess.EventChallenge)
		}
		c := ev.Challenge
		if c == nil || c.ID != "7pGLxJ4F" {
			t.Fatalf("Challenge = %+v, want id 7pGLxJ4F", c)
		}
		if c.Variant == nil || *c.Variant != lichess.VariantStandard {
			t.Errorf("Variant = %v, want standard", c.Variant)
		}
		if c.Challenger.Title == nil || *c.Challenger.Title != lichess.TitleBOT {
			t.Errorf("challenger title = %v, want BOT", c.Challenger.Title)
		}
		if c.TimeControl.Type != lichess.TimeControlClock || c.TimeControl.Limit == nil || *c.TimeControl.Limit != 300 {
			t.Errorf("TimeControl = %+v, want clock 300+2", c.TimeControl)
		}
	})

	t.Run("challenge declined carries reason", func(t *testing.T) {
		raw := `{
			"type": "challengeDeclined",
			"challenge": {
				"id": "7pGLxJ4F",
				"status": "declined",
				"challenger": {"id": "thibot", "name": "thibot"},
				"variant": {},
				"rated": false,
				"speed": "blitz",
				"timeControl": {"type": "unlimited"},
				"color": "random",
				"perf": {},
				"declineReason": "I'm not accepting challenges at the moment.",
				"declineReasonKey": "generic"
			}
		}`
		var ev lichess.BotEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		c := ev.Challenge
		if c.Variant != nil {
			t.Errorf("Variant = %v, want nil for empty object", *c.Variant)
		}
		if c.DeclineReasonKey == nil || *c.DeclineReasonKey != lichess.DeclineGeneric {
			t.Errorf("DeclineReasonKey = %v, want generic", c.DeclineReasonKey)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		var ev lichess.BotEvent
		if err := json.Unmarshal([]byte(`{"type": "tournamentStart"}`), &ev); err == nil {
			t.Fatal("unmarshal succeeded, want error")
		}
	})

	t.Run("missing payload", func(t *testing.T) {
		var ev lichess.BotEvent
		if err := json.Unmarshal([]byte(`{"type": "gameStart"}`), &ev); err == nil {
			t.Fatal("unmarshal succeeded, want error")
		}
	})
}

func TestGameEventUnmarshal(t *testing.T) {
	t.Run("game full", func(t *testing.T) {
		raw := `{
			"type": "gameFull",
			"id": "rCRw1AuO",
			"variant": {"key": "chess960"},
			"clock": {"limit": 300, "increment": 2},
			"speed": "blitz",
			"perf": {"name": "Blitz"},
			"rated": true,
			"createdAt": 1600000000000,
			"white": {"id": "squire", "name": "squire", "title": "BOT", "rating": 2020},
			"black": {"aiLevel": 4},
			"initialFen": "startpos",
			"state": {
				"type": "gameState",
				"moves": "",
				"wtime": 300000, "btime": 300000, "winc": 2000, "binc": 2000,
				"status": "started"
			}
		}`
		var ev lichess.GameEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Type != lichess.EventGameFull {
			t.Errorf("Type = %v, want %v", ev.Type, lichess.EventGameFull)
		}
		full := ev.Full
		if full == nil || full.ID != "rCRw1AuO" {
			t.Fatalf("Full = %+v, want id rCRw1AuO", full)
		}
		if full.Variant == nil || *full.Variant != lichess.VariantChess960 {
			t.Errorf("Variant = %v, want chess960", full.Variant)
		}
		if full.Black.AILevel == nil || *full.Black.AILevel != 4 {
			t.Errorf("black AILevel = %v, want 4", full.Black.AILevel)
		}
		if full.State.Status != lichess.StatusStarted {
			t.Errorf("state status = %v, want started", full.State.Status)
		}
		if full.State.WhiteTime != 300000 {
			t.Errorf("state wtime = %d, want 300000", full.State.WhiteTime)
		}
	})

	t.Run("game state defaults omitted flags to false", func(t *testing.T) {
		raw := `{
			"type": "gameState",
			"moves": "e2e4 e7e5",
			"wtime": 295000, "btime": 298000, "winc": 2000, "binc": 2000,
			"status": "started",
			"wdraw": true
		}`
		var ev lichess.GameEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		state := ev.State
		if state == nil || state.Moves != "e2e4 e7e5" {
			t.Fatalf("State = %+v, want moves e2e4 e7e5", state)
		}
		if !state.WhiteDrawOffer {
			t.Error("WhiteDrawOffer = false, want true")
		}
		if state.BlackDrawOffer || state.WhiteTakeBack || state.BlackTakeBack {
			t.Error("omitted flags should decode as false")
		}
	})

	t.Run("finished game state", func(t *testing.T) {
		raw := `{
			"type": "gameState",
			"moves": "e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7",
			"wtime": 287000, "btime": 281000, "winc": 2000, "binc": 2000,
			"status": "mate",
			"winner": "white"
		}`
		var ev lichess.GameEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.State.Status.IsRunning() {
			t.Error("mate reported as running")
		}
		if ev.State.Winner == nil || *ev.State.Winner != lichess.ColorWhite {
			t.Errorf("Winner = %v, want white", ev.State.Winner)
		}
	})

	t.Run("chat line", func(t *testing.T) {
		raw := `{"type": "chatLine", "room": "player", "username": "thibault", "text": "Good luck!"}`
		var ev lichess.GameEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Chat == nil || ev.Chat.Room != lichess.RoomPlayer {
			t.Fatalf("Chat = %+v, want player room", ev.Chat)
		}
		if ev.Chat.Username != "thibault" || ev.Chat.Text != "Good luck!" {
			t.Errorf("Chat line = %+v", ev.Chat.ChatLine)
		}
	})

	t.Run("opponent gone", func(t *testing.T) {
		raw := `{"type": "opponentGone", "gone": true, "claimWinInSeconds": 8}`
		var ev lichess.GameEvent
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Gone == nil || !ev.Gone.Gone {
			t.Fatalf("Gone = %+v, want gone true", ev.Gone)
		}
		if ev.Gone.ClaimWinInSeconds == nil || *ev.Gone.ClaimWinInSeconds != 8 {
			t.Errorf("ClaimWinInSeconds = %v, want 8", ev.Gone.ClaimWinInSeconds)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		var ev lichess.GameEvent
		if err := json.Unmarshal([]byte(`{"type": "rematchOffer"}`), &ev); err == nil {
			t.Fatal("unmarshal succeeded, want error")
		}
	})

	t.Run("game state without status", func(t *testing.T) {
		raw := `{"type": "gameState", "moves": "", "wtime": 1, "btime": 1, "winc": 0, "binc": 0}`
		var ev lichess.GameEvent
		if err := json.Unmarshal([]byte(raw), &ev); err == nil {
			t.Fatal("unmarshal succeeded, want error")
		}
	})

	t.Run("bad status in game state", func(t *testing.T) {
		raw := `{"type": "gameState", "moves": "", "wtime": 1, "btime": 1, "winc": 0, "binc": 0, "status": "adjourned"}`
		var ev lichess.GameEvent
		if err := json.Unmarshal([]byte(raw), &ev); err == nil {
			t.Fatal("unmarshal succeeded, want error")
		}
	})
}

func TestUserPreferencesFlattening(t *testing.T) {
	raw := `{
		"prefs": {
			"dark": true,
			"transp": false,
			"bgImg": "https://lichess.org/assets/images/background/landscape.jpg",
			"is3d": false,
			"theme": "blue",
			"pieceSet": "cburnett",
			"takeback": 3,
			"moretime": 2,
			"clockTenths": 1,
			"clockBar": true,
			"premove": true,
			"zen": 0
		},
		"language": "en-GB"
	}`
	var prefs lichess.UserPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !prefs.Dark {
		t.Error("Dark = false, want true")
	}
	if prefs.BackgroundImage == "" {
		t.Error("BackgroundImage empty, want the bgImg value")
	}
	if prefs.TakeBack != 3 || prefs.MoreTime != 2 {
		t.Errorf("TakeBack = %d MoreTime = %d, want 3 and 2", prefs.TakeBack, prefs.MoreTime)
	}
	if prefs.Language != "en-GB" {
		t.Errorf("Language = %q, want en-GB", prefs.Language)
	}
}
